package recipe

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrNoBaseInstructions is returned when an enhanced recipe is missing the
// mandatory base instruction level.
var ErrNoBaseInstructions = errors.New("recipe has no base instruction level")

var skillToDifficulty = map[SkillLevel]Difficulty{
	SkillBeginner:     DifficultyEasy,
	SkillIntermediate: DifficultyMedium,
	SkillAdvanced:     DifficultyHard,
}

var difficultyToSkill = map[Difficulty]SkillLevel{
	DifficultyEasy:   SkillBeginner,
	DifficultyMedium: SkillIntermediate,
	DifficultyHard:   SkillAdvanced,
}

// DifficultyForSkill maps a skill level to its legacy difficulty.
func DifficultyForSkill(s SkillLevel) Difficulty {
	if d, ok := skillToDifficulty[s]; ok {
		return d
	}
	return DifficultyEasy
}

// SkillForDifficulty maps a legacy difficulty to its skill level.
func SkillForDifficulty(d Difficulty) SkillLevel {
	if s, ok := difficultyToSkill[d]; ok {
		return s
	}
	return SkillBeginner
}

// NewID returns a recipe id unique for the lifetime of the store.
func NewID() string {
	return "recipe_" + ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// equipmentKeywords maps instruction-text keywords to the equipment
// vocabulary. Inference is a best-effort default-filler for migrated legacy
// recipes, not a contract.
var equipmentKeywords = []struct {
	keywords  []string
	equipment string
}{
	{[]string{"oven", "bake"}, "oven"},
	{[]string{"stovetop", "pan", "pot"}, "stovetop"},
	{[]string{"microwave"}, "microwave"},
	{[]string{"air fryer"}, "air-fryer"},
}

// InferEquipment scans instruction text for equipment keywords.
func InferEquipment(instructions []string) []string {
	text := strings.ToLower(strings.Join(instructions, " "))

	var found []string
	for _, entry := range equipmentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				found = append(found, entry.equipment)
				break
			}
		}
	}
	return found
}

// ToEnhanced converts a legacy recipe to the canonical shape. Fields absent
// on the legacy side are synthesized: equipment is inferred from instruction
// text and the flat instruction list becomes the base level.
func ToEnhanced(legacy Legacy) Recipe {
	now := time.Now().UTC()

	tips := legacy.Tips
	if tips == nil {
		tips = []string{}
	}

	return Recipe{
		ID:              legacy.ID,
		Title:           legacy.Name,
		PrimaryCategory: legacy.CategoryID,
		SecondaryTags:   legacy.Tags,
		PrepTime:        legacy.PrepTime,
		CookTime:        legacy.CookTime,
		TotalTime:       legacy.PrepTime + legacy.CookTime,
		CostPerServing:  legacy.EstimatedCost,
		Servings:        legacy.Servings,
		SkillLevel:      SkillForDifficulty(legacy.Difficulty),
		EquipmentNeeded: InferEquipment(legacy.Instructions),
		EmotionalHook:   legacy.Description,
		Ingredients:     legacy.Ingredients,
		Instructions: []InstructionLevel{{
			Level: LevelBase,
			Steps: legacy.Instructions,
		}},
		EquipmentVariations: []EquipmentVariation{},
		Nutrition:           legacy.Nutrition,
		Tips:                tips,
		Media:               MediaContent{MainPhoto: legacy.Image},
		Dietary:             legacy.Dietary,
		MealType:            legacy.MealType,
		CreatedAt:           now,
		UpdatedAt:           now,
		Difficulty:          legacy.Difficulty,
	}
}

// ToLegacy converts a canonical recipe back to the legacy shape, selecting
// the base-level instruction steps only.
func ToLegacy(enhanced Recipe) (Legacy, error) {
	steps, ok := enhanced.BaseSteps()
	if !ok {
		return Legacy{}, ErrNoBaseInstructions
	}

	return Legacy{
		ID:            enhanced.ID,
		Name:          enhanced.Title,
		Description:   enhanced.EmotionalHook,
		Image:         enhanced.Media.MainPhoto,
		PrepTime:      enhanced.PrepTime,
		CookTime:      enhanced.CookTime,
		Servings:      enhanced.Servings,
		Difficulty:    enhanced.Difficulty,
		EstimatedCost: enhanced.CostPerServing,
		Ingredients:   enhanced.Ingredients,
		Instructions:  steps,
		Tags:          enhanced.SecondaryTags,
		Dietary:       enhanced.Dietary,
		MealType:      enhanced.MealType,
		CategoryID:    enhanced.PrimaryCategory,
		Tips:          enhanced.Tips,
		Nutrition:     enhanced.Nutrition,
	}, nil
}

// FromTemplate constructs a new recipe from a submitted template, assigning
// a fresh id and stamping both timestamps.
func FromTemplate(template Template) Recipe {
	now := time.Now().UTC()

	return Recipe{
		ID:              NewID(),
		Title:           template.Title,
		PrimaryCategory: template.PrimaryCategory,
		SecondaryTags:   template.SecondaryTags,
		PrepTime:        template.PrepTime,
		CookTime:        template.CookTime,
		TotalTime:       template.PrepTime + template.CookTime,
		CostPerServing:  template.CostPerServing,
		Servings:        template.Servings,
		SkillLevel:      template.SkillLevel,
		EquipmentNeeded: template.EquipmentNeeded,
		EmotionalHook:   template.EmotionalHook,
		Ingredients:     template.Ingredients,
		Instructions: []InstructionLevel{{
			Level: LevelBase,
			Steps: template.BaseInstructions,
		}},
		EquipmentVariations: []EquipmentVariation{},
		Nutrition:           template.Nutrition,
		Tips:                template.Tips,
		Media:               MediaContent{MainPhoto: template.MainPhoto},
		Dietary:             template.Dietary,
		MealType:            template.MealType,
		CreatedAt:           now,
		UpdatedAt:           now,
		Difficulty:          DifficultyForSkill(template.SkillLevel),
	}
}

// FromUpload constructs a recipe from an upload: the embedded template plus
// any additional instruction levels, equipment variations, and media.
func FromUpload(upload Upload) Recipe {
	r := FromTemplate(upload.Recipe)

	if upload.AdditionalLevels != nil {
		if len(upload.AdditionalLevels.Intermediate) > 0 {
			r.Instructions = append(r.Instructions, InstructionLevel{
				Level: LevelIntermediate,
				Steps: upload.AdditionalLevels.Intermediate,
			})
		}
		if len(upload.AdditionalLevels.Advanced) > 0 {
			r.Instructions = append(r.Instructions, InstructionLevel{
				Level: LevelAdvanced,
				Steps: upload.AdditionalLevels.Advanced,
			})
		}
	}

	if len(upload.EquipmentVariations) > 0 {
		r.EquipmentVariations = upload.EquipmentVariations
	}
	if len(upload.StepPhotos) > 0 {
		r.Media.StepPhotos = upload.StepPhotos
	}
	if upload.Video != "" {
		r.Media.Video = upload.Video
	}

	return r
}

// MigrateLegacy converts a batch of legacy recipes to the canonical shape.
func MigrateLegacy(legacy []Legacy) []Recipe {
	enhanced := make([]Recipe, 0, len(legacy))
	for _, l := range legacy {
		enhanced = append(enhanced, ToEnhanced(l))
	}
	return enhanced
}
