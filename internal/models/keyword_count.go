package models

// KeywordCount is the number of ads in which a keyword matched at least once.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// KeywordCounts is an ordered keyword -> count mapping. Only keywords with a
// nonzero count are present.
type KeywordCounts []KeywordCount

// Get returns the count for keyword and whether it is present.
func (k KeywordCounts) Get(keyword string) (int, bool) {
	for _, kc := range k {
		if kc.Keyword == keyword {
			return kc.Count, true
		}
	}
	return 0, false
}

// Total returns the sum of all counts.
func (k KeywordCounts) Total() int {
	total := 0
	for _, kc := range k {
		total += kc.Count
	}
	return total
}

// Keywords returns the keyword names in order.
func (k KeywordCounts) Keywords() []string {
	names := make([]string, len(k))
	for i, kc := range k {
		names[i] = kc.Keyword
	}
	return names
}

// CategoryCount holds the keyword counts restricted to one category.
type CategoryCount struct {
	Category string        `json:"category"`
	Keywords KeywordCounts `json:"keywords"`
}

// Total returns the sum of keyword counts in the category.
func (c CategoryCount) Total() int {
	return c.Keywords.Total()
}

// CategoryCounts is an ordered category -> KeywordCounts mapping.
type CategoryCounts []CategoryCount

// Get returns the counts for a category and whether the category is present.
func (c CategoryCounts) Get(category string) (KeywordCounts, bool) {
	for _, cc := range c {
		if cc.Category == category {
			return cc.Keywords, true
		}
	}
	return nil, false
}
