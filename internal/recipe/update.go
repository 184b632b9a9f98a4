package recipe

import "time"

// Patch carries a partial update. Nil fields are left untouched. The id and
// createdAt of the target recipe are immutable.
type Patch struct {
	Title           *string      `json:"title,omitempty"`
	PrimaryCategory *string      `json:"primaryCategory,omitempty"`
	SecondaryTags   []string     `json:"secondaryTags,omitempty"`
	PrepTime        *int         `json:"prepTime,omitempty"`
	CookTime        *int         `json:"cookTime,omitempty"`
	CostPerServing  *float64     `json:"costPerServing,omitempty"`
	Servings        *int         `json:"servings,omitempty"`
	SkillLevel      *SkillLevel  `json:"skillLevel,omitempty"`
	EquipmentNeeded []string     `json:"equipmentNeeded,omitempty"`
	EmotionalHook   *string      `json:"emotionalHook,omitempty"`
	Ingredients     []Ingredient `json:"ingredients,omitempty"`
	Tips            []string     `json:"tips,omitempty"`
	Dietary         []string     `json:"dietary,omitempty"`
	MealType        []string     `json:"mealType,omitempty"`
	MainPhoto       *string      `json:"mainPhoto,omitempty"`
}

// Apply overlays the patch onto a copy of the recipe, recomputing the
// derived totalTime and difficulty fields and bumping updatedAt.
func (p Patch) Apply(r Recipe) Recipe {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.PrimaryCategory != nil {
		r.PrimaryCategory = *p.PrimaryCategory
	}
	if p.SecondaryTags != nil {
		r.SecondaryTags = p.SecondaryTags
	}
	if p.PrepTime != nil {
		r.PrepTime = *p.PrepTime
	}
	if p.CookTime != nil {
		r.CookTime = *p.CookTime
	}
	if p.CostPerServing != nil {
		r.CostPerServing = *p.CostPerServing
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.SkillLevel != nil {
		r.SkillLevel = *p.SkillLevel
	}
	if p.EquipmentNeeded != nil {
		r.EquipmentNeeded = p.EquipmentNeeded
	}
	if p.EmotionalHook != nil {
		r.EmotionalHook = *p.EmotionalHook
	}
	if p.Ingredients != nil {
		r.Ingredients = p.Ingredients
	}
	if p.Tips != nil {
		r.Tips = p.Tips
	}
	if p.Dietary != nil {
		r.Dietary = p.Dietary
	}
	if p.MealType != nil {
		r.MealType = p.MealType
	}
	if p.MainPhoto != nil {
		r.Media.MainPhoto = *p.MainPhoto
	}

	r.TotalTime = r.PrepTime + r.CookTime
	r.Difficulty = DifficultyForSkill(r.SkillLevel)
	r.UpdatedAt = time.Now().UTC()
	return r
}
