package keywords

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Pattern set names.
const (
	SetGroups     = "groups"
	SetVariations = "variations"
)

// Files names the three keyword artifacts inside a data directory.
type Files struct {
	Categories        string `yaml:"categories"`
	GroupPatterns     string `yaml:"group_patterns"`
	VariationPatterns string `yaml:"variation_patterns"`
}

// DefaultFiles are the artifact names used when none are configured.
var DefaultFiles = Files{
	Categories:        "keyword_categories.yaml",
	GroupPatterns:     "keyword_group_patterns.yaml",
	VariationPatterns: "keyword_variation_patterns.yaml",
}

// withDefaults fills empty names from DefaultFiles.
func (f Files) withDefaults() Files {
	if f.Categories == "" {
		f.Categories = DefaultFiles.Categories
	}
	if f.GroupPatterns == "" {
		f.GroupPatterns = DefaultFiles.GroupPatterns
	}
	if f.VariationPatterns == "" {
		f.VariationPatterns = DefaultFiles.VariationPatterns
	}
	return f
}

// Artifacts are the compiled keyword inputs shared by every pass.
type Artifacts struct {
	Groups     *PatternSet
	Variations *PatternSet
	Categories *CategorySet
}

// UnmatchableMembers returns category keywords that have no variation
// pattern and therefore can never be counted.
func (a *Artifacts) UnmatchableMembers() []string {
	var missing []string
	for _, c := range a.Categories.Categories() {
		for _, kw := range c.Keywords {
			if !a.Variations.Has(kw) {
				missing = append(missing, kw)
			}
		}
	}
	return missing
}

// LoadArtifacts reads and compiles the artifacts from a directory.
func LoadArtifacts(dir string, files Files) (*Artifacts, error) {
	return LoadArtifactsFS(os.DirFS(dir), files)
}

// LoadArtifactsFS reads and compiles the artifacts from fsys. Every failure is
// a *ConfigError.
func LoadArtifactsFS(fsys fs.FS, files Files) (*Artifacts, error) {
	files = files.withDefaults()

	groupEntries, err := readPatternFile(fsys, files.GroupPatterns)
	if err != nil {
		return nil, err
	}
	groups, err := CompilePatterns(files.GroupPatterns, groupEntries)
	if err != nil {
		return nil, err
	}
	groups.Name = SetGroups

	variationEntries, err := readPatternFile(fsys, files.VariationPatterns)
	if err != nil {
		return nil, err
	}
	variations, err := CompilePatterns(files.VariationPatterns, variationEntries)
	if err != nil {
		return nil, err
	}
	variations.Name = SetVariations

	categoryList, err := readCategoryFile(fsys, files.Categories)
	if err != nil {
		return nil, err
	}
	categories, err := NewCategorySet(files.Categories, categoryList)
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		Groups:     groups,
		Variations: variations,
		Categories: categories,
	}, nil
}

func readPatternFile(fsys fs.FS, name string) ([]Entry, error) {
	mapping, err := readMapping(fsys, name)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, &ConfigError{
				Artifact: name,
				Keyword:  key.Value,
				Err:      fmt.Errorf("%w: value must be a string (line %d)", ErrInvalidPattern, value.Line),
			}
		}
		entries = append(entries, Entry{Key: key.Value, Value: value.Value})
	}
	return entries, nil
}

func readCategoryFile(fsys fs.FS, name string) ([]Category, error) {
	mapping, err := readMapping(fsys, name)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]

		var members []string
		if err := value.Decode(&members); err != nil {
			return nil, &ConfigError{
				Artifact: name,
				Keyword:  key.Value,
				Err:      fmt.Errorf("%w (line %d)", ErrInvalidCategory, value.Line),
			}
		}
		categories = append(categories, Category{Name: key.Value, Keywords: members})
	}
	return categories, nil
}

// readMapping returns the top-level mapping node of a YAML file. Decoding into
// a node keeps document order, which is the tie-break order for counts.
func readMapping(fsys fs.FS, name string) (*yaml.Node, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Artifact: name, Err: ErrMissingArtifact}
		}
		return nil, &ConfigError{Artifact: name, Err: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Artifact: name, Err: fmt.Errorf("%w: %v", ErrMalformedArtifact, err)}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &ConfigError{Artifact: name, Err: ErrEmptyArtifact}
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, &ConfigError{Artifact: name, Err: ErrNotMapping}
	}
	if len(mapping.Content) == 0 {
		return nil, &ConfigError{Artifact: name, Err: ErrEmptyArtifact}
	}
	return mapping, nil
}
