package recipes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/budget-bites/budgetbites/internal/recipe"
)

// ListQuery carries the parsed filter parameters of a list request.
type ListQuery struct {
	Query    string
	Category string
	MaxCost  float64 `validate:"gte=0"`
	MaxTime  int     `validate:"gte=0"`

	SkillLevel      []string
	Dietary         []string
	MealType        []string
	Equipment       []string
	PrimaryCategory []string
}

// parseListQuery reads the filter configuration from query parameters.
// Multi-valued parameters accept both repetition and comma separation.
func parseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{
		Query:           strings.TrimSpace(values.Get("q")),
		Category:        strings.TrimSpace(values.Get("category")),
		SkillLevel:      splitParam(values["skill"]),
		Dietary:         splitParam(values["dietary"]),
		MealType:        splitParam(values["meal_type"]),
		Equipment:       splitParam(values["equipment"]),
		PrimaryCategory: splitParam(values["primary_category"]),
	}

	if raw := values.Get("max_cost"); raw != "" {
		cost, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ListQuery{}, fmt.Errorf("parsing max_cost: %w", err)
		}
		q.MaxCost = cost
	}
	if raw := values.Get("max_time"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return ListQuery{}, fmt.Errorf("parsing max_time: %w", err)
		}
		q.MaxTime = minutes
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(q); err != nil {
		return ListQuery{}, fmt.Errorf("validating query: %w", err)
	}
	return q, nil
}

func (q ListQuery) filter() recipe.Filter {
	return recipe.Filter{
		MaxCost:         q.MaxCost,
		MaxTime:         q.MaxTime,
		SkillLevel:      q.SkillLevel,
		Dietary:         q.Dietary,
		MealType:        q.MealType,
		Equipment:       q.Equipment,
		PrimaryCategory: q.PrimaryCategory,
	}
}

func splitParam(params []string) []string {
	var out []string
	for _, param := range params {
		for _, part := range strings.Split(param, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
