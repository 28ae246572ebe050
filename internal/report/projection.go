// Package report turns keyword counts into display values: percentages of the
// filtered job total, gap-free ranks and the posting date range.
package report

import (
	"errors"
	"sort"

	"jobinsights/internal/models"
)

// ErrEmptyResult is returned when the filtered selection holds no job ads,
// so percentages are undefined.
var ErrEmptyResult = errors.New("no data for this selection")

// DefaultTopN is the number of keywords shown in the top-skills chart.
const DefaultTopN = 10

// RankedKeyword is a keyword count projected against the job total.
type RankedKeyword struct {
	Rank           int     `json:"rank"`
	Keyword        string  `json:"keyword"`
	Count          int     `json:"count"`
	Percent        float64 `json:"percent"`
	DisplayPercent int     `json:"display_percent"` // truncated to a whole number
}

// RankedCategory is one category's projected keyword table.
type RankedCategory struct {
	Category string          `json:"category"`
	Total    int             `json:"total"`
	Keywords []RankedKeyword `json:"keywords"`
}

// Project computes count / total * 100 for every keyword and ranks the
// entries 1..K by count descending. Equal counts keep their input order.
// DisplayPercent uses integer division so whole percentages are exact.
func Project(counts models.KeywordCounts, total int) ([]RankedKeyword, error) {
	if total <= 0 {
		return nil, ErrEmptyResult
	}

	ranked := make([]RankedKeyword, len(counts))
	for i, kc := range counts {
		ranked[i] = RankedKeyword{
			Keyword:        kc.Keyword,
			Count:          kc.Count,
			Percent:        float64(kc.Count) / float64(total) * 100,
			DisplayPercent: kc.Count * 100 / total,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

// ProjectCategories projects every category's keywords against total.
// Categories without matches yield an empty table.
func ProjectCategories(counts models.CategoryCounts, total int) ([]RankedCategory, error) {
	if total <= 0 {
		return nil, ErrEmptyResult
	}

	out := make([]RankedCategory, 0, len(counts))
	for _, cc := range counts {
		ranked, err := Project(cc.Keywords, total)
		if err != nil {
			return nil, err
		}
		out = append(out, RankedCategory{
			Category: cc.Category,
			Total:    cc.Total(),
			Keywords: ranked,
		})
	}
	return out, nil
}

// TopN returns at most n leading entries.
func TopN(ranked []RankedKeyword, n int) []RankedKeyword {
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
