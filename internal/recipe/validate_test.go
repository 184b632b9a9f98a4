package recipe

import (
	"reflect"
	"testing"
)

func validTemplate() Template {
	return Template{
		Title:            "Black Bean Tacos",
		PrimaryCategory:  "quick-fixes",
		EmotionalHook:    "Taco night for under two dollars a plate.",
		PrepTime:         10,
		CookTime:         10,
		CostPerServing:   1.50,
		Servings:         4,
		SkillLevel:       SkillBeginner,
		Ingredients:      []Ingredient{{Name: "black beans", Amount: "1", Unit: "can", Cost: 0.90}},
		BaseInstructions: []string{"Warm the beans.", "Assemble the tacos."},
		MainPhoto:        "https://example.com/tacos.jpg",
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Template)
		want   []string
	}{
		{
			name:   "valid template",
			mutate: func(t *Template) {},
			want:   nil,
		},
		{
			name:   "missing title",
			mutate: func(t *Template) { t.Title = "   " },
			want:   []string{"Title is required"},
		},
		{
			name:   "missing category",
			mutate: func(t *Template) { t.PrimaryCategory = "" },
			want:   []string{"Primary category is required"},
		},
		{
			name:   "missing hook",
			mutate: func(t *Template) { t.EmotionalHook = "" },
			want:   []string{"Emotional hook is required"},
		},
		{
			name:   "negative prep time",
			mutate: func(t *Template) { t.PrepTime = -5 },
			want:   []string{"Prep time must be positive"},
		},
		{
			name:   "negative cook time",
			mutate: func(t *Template) { t.CookTime = -1 },
			want:   []string{"Cook time must be positive"},
		},
		{
			name:   "zero cost",
			mutate: func(t *Template) { t.CostPerServing = 0 },
			want:   []string{"Cost per serving must be positive"},
		},
		{
			name:   "zero servings",
			mutate: func(t *Template) { t.Servings = 0 },
			want:   []string{"Servings must be positive"},
		},
		{
			name:   "no ingredients",
			mutate: func(t *Template) { t.Ingredients = nil },
			want:   []string{"At least one ingredient is required"},
		},
		{
			name:   "no instructions",
			mutate: func(t *Template) { t.BaseInstructions = []string{} },
			want:   []string{"Instructions are required"},
		},
		{
			name:   "missing photo",
			mutate: func(t *Template) { t.MainPhoto = "" },
			want:   []string{"Main photo is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := validTemplate()
			tt.mutate(&template)

			err := ValidateTemplate(template)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("ValidateTemplate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateTemplate() = nil, want error")
			}
			if !reflect.DeepEqual(err.Messages, tt.want) {
				t.Errorf("messages = %v, want %v", err.Messages, tt.want)
			}
		})
	}
}

func TestValidateTemplate_CollectsAllViolations(t *testing.T) {
	err := ValidateTemplate(Template{})
	if err == nil {
		t.Fatal("ValidateTemplate(zero) = nil, want error")
	}

	want := []string{
		"Title is required",
		"Primary category is required",
		"Emotional hook is required",
		"Cost per serving must be positive",
		"Servings must be positive",
		"At least one ingredient is required",
		"Instructions are required",
		"Main photo is required",
	}
	if !reflect.DeepEqual(err.Messages, want) {
		t.Errorf("messages = %v, want %v", err.Messages, want)
	}
}

func TestValidateRecipe(t *testing.T) {
	tests := []struct {
		name   string
		recipe Recipe
		want   []string
	}{
		{
			name: "valid recipe",
			recipe: Recipe{
				ID:           "recipe_ok",
				Title:        "Fine",
				Instructions: []InstructionLevel{{Level: LevelBase, Steps: []string{"Cook."}}},
			},
			want: nil,
		},
		{
			name: "missing id",
			recipe: Recipe{
				Title:        "No ID",
				Instructions: []InstructionLevel{{Level: LevelBase, Steps: []string{"Cook."}}},
			},
			want: []string{"Recipe ID is required"},
		},
		{
			name: "missing base level",
			recipe: Recipe{
				ID:           "recipe_x",
				Title:        "No base",
				Instructions: []InstructionLevel{{Level: LevelAdvanced, Steps: []string{"Wing it."}}},
			},
			want: []string{"Base instructions are required"},
		},
		{
			name:   "everything missing",
			recipe: Recipe{},
			want: []string{
				"Recipe ID is required",
				"Title is required",
				"Base instructions are required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecipe(tt.recipe)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("ValidateRecipe() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateRecipe() = nil, want error")
			}
			if !reflect.DeepEqual(err.Messages, tt.want) {
				t.Errorf("messages = %v, want %v", err.Messages, tt.want)
			}
		})
	}
}
