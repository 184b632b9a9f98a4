package recipe

import (
	"slices"
	"strings"
)

// Filter is a structured filter configuration. A zero MaxCost or MaxTime
// means no bound; an empty set field places no restriction. Multi-valued
// fields are OR-matched within the field and AND-combined across fields.
type Filter struct {
	MaxCost         float64
	MaxTime         int
	SkillLevel      []string
	Dietary         []string
	MealType        []string
	Equipment       []string
	PrimaryCategory []string
}

// Match returns the recipes matching the free-text query, the filter, and
// the optional category selector. The result is a stable subsequence of the
// input; the input is never mutated. Text matching is a locale-naive
// case-insensitive substring match.
func Match(recipes []Recipe, query string, filter Filter, category string) []Recipe {
	matched := make([]Recipe, 0, len(recipes))
	queryLower := strings.ToLower(strings.TrimSpace(query))

	for _, r := range recipes {
		if category != "" && r.PrimaryCategory != category {
			continue
		}
		if queryLower != "" && !strings.Contains(searchableText(r), queryLower) {
			continue
		}
		if filter.MaxCost > 0 && r.CostPerServing > filter.MaxCost {
			continue
		}
		if filter.MaxTime > 0 && r.TotalTime > filter.MaxTime {
			continue
		}
		if len(filter.SkillLevel) > 0 && !slices.Contains(filter.SkillLevel, string(r.SkillLevel)) {
			continue
		}
		if len(filter.Dietary) > 0 && !intersects(filter.Dietary, r.Dietary) {
			continue
		}
		if len(filter.MealType) > 0 && !intersects(filter.MealType, r.MealType) {
			continue
		}
		if len(filter.Equipment) > 0 && !matchesEquipment(filter.Equipment, r) {
			continue
		}
		if len(filter.PrimaryCategory) > 0 && !slices.Contains(filter.PrimaryCategory, r.PrimaryCategory) {
			continue
		}

		matched = append(matched, r)
	}

	return matched
}

// searchableText concatenates every field the free-text query is matched
// against.
func searchableText(r Recipe) string {
	parts := []string{r.Title, r.EmotionalHook, r.PrimaryCategory}
	parts = append(parts, r.SecondaryTags...)
	for _, ing := range r.Ingredients {
		parts = append(parts, ing.Name)
	}
	parts = append(parts, r.Tips...)
	parts = append(parts, r.Dietary...)
	parts = append(parts, r.MealType...)
	return strings.ToLower(strings.Join(parts, " "))
}

func intersects(want, have []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

// matchesEquipment checks the base equipment plus equipment named in any
// variation.
func matchesEquipment(want []string, r Recipe) bool {
	for _, w := range want {
		if slices.Contains(r.EquipmentNeeded, w) {
			return true
		}
		for _, v := range r.EquipmentVariations {
			if v.Equipment == w {
				return true
			}
		}
	}
	return false
}
