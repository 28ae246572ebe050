package keywords

import (
	"sort"

	"jobinsights/internal/models"
)

// Normalizer turns raw ad text into the form patterns are matched against.
type Normalizer interface {
	Normalize(text string) string
}

// FindTopics normalizes every ad and counts, per keyword, the ads in which
// its pattern matches at least once.
func FindTopics(ads []string, set *PatternSet, n Normalizer) models.KeywordCounts {
	return CountNormalized(NormalizeAll(ads, n), set)
}

// NormalizeAll normalizes each ad once so several pattern sets can reuse the
// result.
func NormalizeAll(ads []string, n Normalizer) []string {
	out := make([]string, len(ads))
	for i, ad := range ads {
		out[i] = n.Normalize(ad)
	}
	return out
}

// CountNormalized counts keyword presence over already-normalized ads.
// A keyword counts at most once per ad. The result is sorted by count
// descending, ties keep the pattern load order, and keywords that never
// matched are left out.
func CountNormalized(normalized []string, set *PatternSet) models.KeywordCounts {
	patterns := set.Patterns()
	hits := make([]int, len(patterns))

	for _, text := range normalized {
		for i := range patterns {
			if patterns[i].Match(text) {
				hits[i]++
			}
		}
	}

	counts := make(models.KeywordCounts, 0, len(patterns))
	order := make([]int, 0, len(patterns))
	for i, n := range hits {
		if n == 0 {
			continue
		}
		counts = append(counts, models.KeywordCount{Keyword: patterns[i].Keyword, Count: n})
		order = append(order, patterns[i].Index)
	}

	sort.Sort(byCountThenIndex{counts: counts, index: order})
	return counts
}

type byCountThenIndex struct {
	counts models.KeywordCounts
	index  []int
}

func (b byCountThenIndex) Len() int { return len(b.counts) }

func (b byCountThenIndex) Less(i, j int) bool {
	if b.counts[i].Count != b.counts[j].Count {
		return b.counts[i].Count > b.counts[j].Count
	}
	return b.index[i] < b.index[j]
}

func (b byCountThenIndex) Swap(i, j int) {
	b.counts[i], b.counts[j] = b.counts[j], b.counts[i]
	b.index[i], b.index[j] = b.index[j], b.index[i]
}

// NormalizerFunc adapts a function to the Normalizer interface.
type NormalizerFunc func(text string) string

// Normalize calls f(text).
func (f NormalizerFunc) Normalize(text string) string {
	return f(text)
}
