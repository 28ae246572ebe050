// Package lemma reduces job-ad text to canonical word forms before keyword
// matching.
package lemma

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/lemmas.txt data/exceptions.txt
var dataFS embed.FS

// nounRules are WordNet's noun detachment rules, tried in order.
var nounRules = []struct {
	suffix      string
	replacement string
}{
	{"s", ""},
	{"ses", "s"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Lemmatizer maps a lower-cased token to its dictionary base form using noun
// morphology against a known-lemma dictionary.
// It is read-only after construction and safe for concurrent use.
type Lemmatizer struct {
	lemmas     map[string]struct{}
	exceptions map[string][]string
}

// NewLemmatizer builds a lemmatizer from the embedded dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	l := &Lemmatizer{
		lemmas:     make(map[string]struct{}),
		exceptions: make(map[string][]string),
	}

	lemmas, err := dataFS.Open("data/lemmas.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded lemmas: %w", err)
	}
	defer lemmas.Close()
	if err := l.AddWords(lemmas); err != nil {
		return nil, err
	}

	exceptions, err := dataFS.Open("data/exceptions.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded exceptions: %w", err)
	}
	defer exceptions.Close()
	if err := l.AddExceptions(exceptions); err != nil {
		return nil, err
	}

	return l, nil
}

// AddWords adds one base form per line to the dictionary.
// Blank lines and lines starting with # are skipped.
func (l *Lemmatizer) AddWords(r io.Reader) error {
	return eachLine(r, func(fields []string) error {
		for _, f := range fields {
			l.lemmas[strings.ToLower(f)] = struct{}{}
		}
		return nil
	})
}

// AddExceptions reads irregular forms, one per line: the inflected form
// followed by its base forms.
func (l *Lemmatizer) AddExceptions(r io.Reader) error {
	return eachLine(r, func(fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("exception %q has no base form", fields[0])
		}
		form := strings.ToLower(fields[0])
		for _, base := range fields[1:] {
			base = strings.ToLower(base)
			l.exceptions[form] = append(l.exceptions[form], base)
			l.lemmas[base] = struct{}{}
		}
		return nil
	})
}

// LoadDictionaryFile adds the words listed in path to the dictionary.
func (l *Lemmatizer) LoadDictionaryFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open lemma dictionary: %w", err)
	}
	defer f.Close()

	if err := l.AddWords(f); err != nil {
		return fmt.Errorf("failed to read lemma dictionary %s: %w", path, err)
	}
	return nil
}

// Size returns the number of known base forms.
func (l *Lemmatizer) Size() int {
	return len(l.lemmas)
}

// Reduce returns the lemma of token. Tokens with no known base form are
// returned unchanged. When several base forms are known the shortest wins.
func (l *Lemmatizer) Reduce(token string) string {
	candidates := l.candidates(token)
	if len(candidates) == 0 {
		return token
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

func (l *Lemmatizer) candidates(token string) []string {
	if bases, ok := l.exceptions[token]; ok {
		return l.known(append([]string{token}, bases...))
	}

	forms := applyRules([]string{token})
	if found := l.known(append([]string{token}, forms...)); len(found) > 0 {
		return found
	}

	// Keep detaching suffixes until a known form turns up or nothing applies.
	for len(forms) > 0 {
		forms = applyRules(forms)
		if found := l.known(forms); len(found) > 0 {
			return found
		}
	}
	return nil
}

func (l *Lemmatizer) known(forms []string) []string {
	var found []string
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		if _, ok := l.lemmas[f]; ok {
			found = append(found, f)
		}
	}
	return found
}

func applyRules(forms []string) []string {
	var out []string
	for _, form := range forms {
		for _, rule := range nounRules {
			if strings.HasSuffix(form, rule.suffix) && len(form) > len(rule.suffix) {
				out = append(out, strings.TrimSuffix(form, rule.suffix)+rule.replacement)
			}
		}
	}
	return out
}

func eachLine(r io.Reader, fn func(fields []string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(strings.Fields(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
