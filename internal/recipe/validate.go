package recipe

import "strings"

// ValidationError collects every violated rule so callers can surface the
// full list at once rather than one failure at a time.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid recipe: " + strings.Join(e.Messages, "; ")
}

// ValidateTemplate checks a submitted template against the required-field
// rules. A nil return means the template is valid.
func ValidateTemplate(t Template) *ValidationError {
	var errs []string

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(t.PrimaryCategory) == "" {
		errs = append(errs, "Primary category is required")
	}
	if strings.TrimSpace(t.EmotionalHook) == "" {
		errs = append(errs, "Emotional hook is required")
	}
	if t.PrepTime < 0 {
		errs = append(errs, "Prep time must be positive")
	}
	if t.CookTime < 0 {
		errs = append(errs, "Cook time must be positive")
	}
	if t.CostPerServing <= 0 {
		errs = append(errs, "Cost per serving must be positive")
	}
	if t.Servings <= 0 {
		errs = append(errs, "Servings must be positive")
	}
	if len(t.Ingredients) == 0 {
		errs = append(errs, "At least one ingredient is required")
	}
	if len(t.BaseInstructions) == 0 {
		errs = append(errs, "Instructions are required")
	}
	if strings.TrimSpace(t.MainPhoto) == "" {
		errs = append(errs, "Main photo is required")
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Messages: errs}
}

// ValidateRecipe checks an already-constructed recipe, e.g. on import.
func ValidateRecipe(r Recipe) *ValidationError {
	var errs []string

	if strings.TrimSpace(r.ID) == "" {
		errs = append(errs, "Recipe ID is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if _, ok := r.BaseSteps(); !ok {
		errs = append(errs, "Base instructions are required")
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Messages: errs}
}
