package keywords

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern detects one keyword in normalized text.
type Pattern struct {
	Keyword string
	Source  string // expression as written in the artifact
	Index   int    // load order, used as the tie-break when sorting counts

	re *regexp.Regexp
}

// Match reports whether the keyword is present in text.
func (p *Pattern) Match(text string) bool {
	return p.re.MatchString(text)
}

// Entry is one keyword -> value pair in artifact order.
type Entry struct {
	Key   string
	Value string
}

// PatternSet is an ordered, compiled keyword -> pattern mapping.
// Compiled regexps are safe for concurrent use, so a set can be shared by
// concurrent passes.
type PatternSet struct {
	Name     string
	patterns []Pattern
	index    map[string]int
}

// CompilePatterns compiles every entry case-insensitively. Any failure is
// returned as a *ConfigError; no partial set is produced.
func CompilePatterns(name string, entries []Entry) (*PatternSet, error) {
	set := &PatternSet{
		Name:     name,
		patterns: make([]Pattern, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if _, dup := set.index[e.Key]; dup {
			return nil, &ConfigError{Artifact: name, Keyword: e.Key, Err: ErrDuplicateKeyword}
		}
		if strings.TrimSpace(e.Value) == "" {
			return nil, &ConfigError{Artifact: name, Keyword: e.Key, Err: ErrEmptyPattern}
		}

		re, err := regexp.Compile("(?i)" + e.Value)
		if err != nil {
			return nil, &ConfigError{
				Artifact: name,
				Keyword:  e.Key,
				Err:      fmt.Errorf("%w: %v", ErrInvalidPattern, err),
			}
		}

		set.index[e.Key] = len(set.patterns)
		set.patterns = append(set.patterns, Pattern{
			Keyword: e.Key,
			Source:  e.Value,
			Index:   len(set.patterns),
			re:      re,
		})
	}

	return set, nil
}

// Len returns the number of patterns.
func (s *PatternSet) Len() int {
	return len(s.patterns)
}

// Patterns returns the patterns in load order.
func (s *PatternSet) Patterns() []Pattern {
	return s.patterns
}

// Index returns the load-order index of keyword.
func (s *PatternSet) Index(keyword string) (int, bool) {
	i, ok := s.index[keyword]
	return i, ok
}

// Has reports whether the set defines keyword.
func (s *PatternSet) Has(keyword string) bool {
	_, ok := s.index[keyword]
	return ok
}
