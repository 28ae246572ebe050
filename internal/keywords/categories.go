package keywords

// Category is a named, ordered group of keyword variations.
type Category struct {
	Name     string
	Keywords []string
}

// CategorySet is an ordered category mapping in which every keyword belongs
// to at most one category.
type CategorySet struct {
	categories []Category
	owner      map[string]string
}

// NewCategorySet validates membership and builds the set. Repeated keywords
// inside one category are collapsed; a keyword listed under two categories is
// a *ConfigError.
func NewCategorySet(artifact string, categories []Category) (*CategorySet, error) {
	set := &CategorySet{
		categories: make([]Category, 0, len(categories)),
		owner:      make(map[string]string),
	}

	for _, c := range categories {
		for _, existing := range set.categories {
			if existing.Name == c.Name {
				return nil, &ConfigError{Artifact: artifact, Keyword: c.Name, Err: ErrDuplicateKeyword}
			}
		}

		members := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if owner, ok := set.owner[kw]; ok {
				if owner == c.Name {
					continue
				}
				return nil, &ConfigError{Artifact: artifact, Keyword: kw, Err: ErrDuplicateMember}
			}
			set.owner[kw] = c.Name
			members = append(members, kw)
		}
		set.categories = append(set.categories, Category{Name: c.Name, Keywords: members})
	}

	return set, nil
}

// Categories returns the categories in load order.
func (s *CategorySet) Categories() []Category {
	return s.categories
}

// Len returns the number of categories.
func (s *CategorySet) Len() int {
	return len(s.categories)
}

// CategoryOf returns the category keyword belongs to.
func (s *CategorySet) CategoryOf(keyword string) (string, bool) {
	c, ok := s.owner[keyword]
	return c, ok
}

// Names returns the category names in load order.
func (s *CategorySet) Names() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}
