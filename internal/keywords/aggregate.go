package keywords

import "jobinsights/internal/models"

// AggregateByCategory partitions variation counts into categories. Categories
// are walked in load order and each one's members in their listed order; a
// member is kept when counts holds it with a nonzero count. Keywords missing
// from counts are omitted rather than zero-filled, and categories without
// matches are kept with an empty mapping. Equal counts inside a category
// therefore stay in membership order once ranked.
func AggregateByCategory(counts models.KeywordCounts, categories *CategorySet) models.CategoryCounts {
	byKeyword := make(map[string]int, len(counts))
	for _, kc := range counts {
		if kc.Count > 0 {
			byKeyword[kc.Keyword] = kc.Count
		}
	}

	result := make(models.CategoryCounts, 0, categories.Len())
	for _, c := range categories.Categories() {
		keywords := models.KeywordCounts{}
		for _, kw := range c.Keywords {
			if n, ok := byKeyword[kw]; ok {
				keywords = append(keywords, models.KeywordCount{Keyword: kw, Count: n})
			}
		}
		result = append(result, models.CategoryCount{Category: c.Name, Keywords: keywords})
	}

	return result
}

// CategoryTotal is the summed keyword count of one category.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// CategoryTotals sums each category's keyword counts, in category order.
func CategoryTotals(counts models.CategoryCounts) []CategoryTotal {
	totals := make([]CategoryTotal, len(counts))
	for i, cc := range counts {
		totals[i] = CategoryTotal{Category: cc.Category, Total: cc.Total()}
	}
	return totals
}
