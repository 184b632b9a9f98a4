package recipe

// CatalogStats summarizes a recipe collection.
type CatalogStats struct {
	TotalRecipes           int            `json:"totalRecipes"`
	CategoryDistribution   map[string]int `json:"categoryDistribution"`
	SkillLevelDistribution map[string]int `json:"skillLevelDistribution"`
	AverageCost            float64        `json:"averageCost"`
	AverageTime            float64        `json:"averageTime"`
}

// ComputeStats aggregates catalog-wide statistics.
func ComputeStats(recipes []Recipe) CatalogStats {
	stats := CatalogStats{
		TotalRecipes:           len(recipes),
		CategoryDistribution:   make(map[string]int),
		SkillLevelDistribution: make(map[string]int),
	}

	var totalCost float64
	var totalTime int
	for _, r := range recipes {
		stats.CategoryDistribution[r.PrimaryCategory]++
		stats.SkillLevelDistribution[string(r.SkillLevel)]++
		totalCost += r.CostPerServing
		totalTime += r.TotalTime
	}

	if len(recipes) > 0 {
		stats.AverageCost = totalCost / float64(len(recipes))
		stats.AverageTime = float64(totalTime) / float64(len(recipes))
	}

	return stats
}
