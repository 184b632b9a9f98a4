// Package recipe contains the recipe data model, the legacy/enhanced
// conversion layer, validation, and the filter/search engine.
package recipe

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// SkillLevel classifies which instruction variant is shown.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Difficulty is the legacy classification, kept for backward compatibility.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// InstructionLevel names. LevelBase is mandatory on every recipe.
const (
	LevelBase         = "base"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Amount is an ingredient amount. Stored data carries it sometimes as a
// number and sometimes as free text ("to taste"), so it is treated as a
// display string uniformly and never parsed.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ingredient amount: %w", err)
	}
	*a = Amount(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

type Ingredient struct {
	Name      string   `json:"name"`
	Amount    Amount   `json:"amount"`
	Unit      string   `json:"unit"`
	Cost      float64  `json:"cost"`
	Swaps     []string `json:"swaps,omitempty"`
	Essential bool     `json:"essential,omitempty"`
}

type InstructionLevel struct {
	Level string   `json:"level"`
	Steps []string `json:"steps"`
}

type EquipmentVariation struct {
	Equipment      string   `json:"equipment"`
	Instructions   []string `json:"instructions"`
	TimeAdjustment int      `json:"timeAdjustment,omitempty"` // minutes relative to the base recipe
}

type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type MediaContent struct {
	MainPhoto  string   `json:"mainPhoto"`
	StepPhotos []string `json:"stepPhotos,omitempty"`
	Video      string   `json:"video,omitempty"`
}

// Recipe is the canonical (enhanced) record shape. Exactly one instruction
// entry with Level == LevelBase must exist.
type Recipe struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	PrimaryCategory string     `json:"primaryCategory"`
	SecondaryTags   []string   `json:"secondaryTags"`
	PrepTime        int        `json:"prepTime"` // minutes
	CookTime        int        `json:"cookTime"` // minutes
	TotalTime       int        `json:"totalTime"`
	CostPerServing  float64    `json:"costPerServing"`
	Servings        int        `json:"servings"`
	SkillLevel      SkillLevel `json:"skillLevel"`
	EquipmentNeeded []string   `json:"equipmentNeeded"`
	EmotionalHook   string     `json:"emotionalHook"`

	Ingredients         []Ingredient         `json:"ingredients"`
	Instructions        []InstructionLevel   `json:"instructions"`
	EquipmentVariations []EquipmentVariation `json:"equipmentVariations"`

	Nutrition *NutritionInfo `json:"nutrition,omitempty"`
	Tips      []string       `json:"tips"`
	Media     MediaContent   `json:"media"`

	Dietary  []string `json:"dietary"`
	MealType []string `json:"mealType"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Author     string     `json:"author,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
}

// BaseSteps returns the base-level instruction steps, or false if the
// recipe violates the base-level invariant.
func (r Recipe) BaseSteps() ([]string, bool) {
	for _, inst := range r.Instructions {
		if inst.Level == LevelBase {
			return inst.Steps, true
		}
	}
	return nil, false
}

// Legacy is the older record shape kept for backward compatibility with
// previously stored data.
type Legacy struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	PrepTime      int            `json:"prepTime"`
	CookTime      int            `json:"cookTime"`
	Servings      int            `json:"servings"`
	Difficulty    Difficulty     `json:"difficulty"`
	EstimatedCost float64        `json:"estimatedCost"`
	Ingredients   []Ingredient   `json:"ingredients"`
	Instructions  []string       `json:"instructions"`
	Tags          []string       `json:"tags"`
	Dietary       []string       `json:"dietary"`
	MealType      []string       `json:"mealType"`
	CategoryID    string         `json:"categoryId"`
	Tips          []string       `json:"tips,omitempty"`
	Nutrition     *NutritionInfo `json:"nutrition,omitempty"`
}

// Template is the submission shape for creating new recipes.
type Template struct {
	Title            string         `json:"title"`
	PrimaryCategory  string         `json:"primaryCategory"`
	SecondaryTags    []string       `json:"secondaryTags"`
	PrepTime         int            `json:"prepTime"`
	CookTime         int            `json:"cookTime"`
	CostPerServing   float64        `json:"costPerServing"`
	Servings         int            `json:"servings"`
	SkillLevel       SkillLevel     `json:"skillLevel"`
	EquipmentNeeded  []string       `json:"equipmentNeeded"`
	EmotionalHook    string         `json:"emotionalHook"`
	Ingredients      []Ingredient   `json:"ingredients"`
	BaseInstructions []string       `json:"baseInstructions"`
	Tips             []string       `json:"tips"`
	Dietary          []string       `json:"dietary"`
	MealType         []string       `json:"mealType"`
	MainPhoto        string         `json:"mainPhoto"`
	Nutrition        *NutritionInfo `json:"nutrition,omitempty"`
}

// Upload wraps a template with the optional extras an import may carry.
type Upload struct {
	Recipe           Template `json:"recipe"`
	AdditionalLevels *struct {
		Intermediate []string `json:"intermediate,omitempty"`
		Advanced     []string `json:"advanced,omitempty"`
	} `json:"additionalLevels,omitempty"`
	EquipmentVariations []EquipmentVariation `json:"equipmentVariations,omitempty"`
	StepPhotos          []string             `json:"stepPhotos,omitempty"`
	Video               string               `json:"video,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
