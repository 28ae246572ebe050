package keywords

import (
	"reflect"
	"strings"
	"testing"

	"jobinsights/internal/lemma"
	"jobinsights/internal/models"
)

type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(text string) string {
	return strings.ToLower(text)
}

func mustCompile(t *testing.T, entries ...Entry) *PatternSet {
	t.Helper()
	set, err := CompilePatterns("test", entries)
	if err != nil {
		t.Fatalf("CompilePatterns() error = %v", err)
	}
	return set
}

func newLemmaNormalizer(t *testing.T) Normalizer {
	t.Helper()
	n, err := lemma.NewForAlgorithm(lemma.AlgorithmLemma, "")
	if err != nil {
		t.Fatalf("NewForAlgorithm() error = %v", err)
	}
	return n
}

func TestFindTopics_CountsEachAdOnce(t *testing.T) {
	set := mustCompile(t,
		Entry{"python", `\bpython\b`},
		Entry{"sql", `\bsql\b`},
	)
	ads := []string{
		"Looking for a Python and SQL expert",
		"Need someone skilled in Python",
	}

	got := FindTopics(ads, set, newLemmaNormalizer(t))
	want := models.KeywordCounts{{Keyword: "python", Count: 2}, {Keyword: "sql", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTopics() = %v, want %v", got, want)
	}
}

func TestFindTopics_EmptyAds(t *testing.T) {
	set := mustCompile(t, Entry{"python", `\bpython\b`})

	got := FindTopics(nil, set, lowerNormalizer{})
	if len(got) != 0 {
		t.Errorf("FindTopics(nil) = %v, want empty", got)
	}
}

func TestFindTopics_RepeatedMatchCountsOnce(t *testing.T) {
	set := mustCompile(t, Entry{"python", `\bpython\b`})

	got := FindTopics([]string{"Python developer, python scripting, PYTHON"}, set, lowerNormalizer{})
	if n, _ := got.Get("python"); n != 1 {
		t.Errorf("python count = %d, want 1", n)
	}
}

func TestFindTopics_CaseInsensitive(t *testing.T) {
	set := mustCompile(t, Entry{"aws", `\bAWS\b`})
	identity := NormalizerFunc(func(s string) string { return s })

	got := FindTopics([]string{"experience with aws"}, set, identity)
	if n, _ := got.Get("aws"); n != 1 {
		t.Errorf("aws count = %d, want 1", n)
	}
}

func TestFindTopics_OverlappingPatternsAreIndependent(t *testing.T) {
	set := mustCompile(t,
		Entry{"java", `java`},
		Entry{"javascript", `javascript`},
	)

	got := FindTopics([]string{"javascript only"}, set, lowerNormalizer{})
	want := models.KeywordCounts{{Keyword: "java", Count: 1}, {Keyword: "javascript", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTopics() = %v, want %v", got, want)
	}
}

func TestFindTopics_SortOrder(t *testing.T) {
	set := mustCompile(t,
		Entry{"excel", `excel`},
		Entry{"tableau", `tableau`},
		Entry{"python", `python`},
		Entry{"sql", `sql`},
	)
	ads := []string{
		"python sql",
		"python tableau",
		"python excel sql",
		"tableau",
	}

	got := FindTopics(ads, set, lowerNormalizer{})
	// python 3; tableau and sql tie at 2 and keep load order; excel 1.
	want := models.KeywordCounts{{Keyword: "python", Count: 3}, {Keyword: "tableau", Count: 2}, {Keyword: "sql", Count: 2}, {Keyword: "excel", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTopics() = %v, want %v", got, want)
	}
}

func TestFindTopics_Properties(t *testing.T) {
	set := mustCompile(t,
		Entry{"python", `\bpython\b`},
		Entry{"r", `\br\b`},
		Entry{"ml", `machine learning|\bml\b`},
	)
	ads := []string{
		"Python and R for machine learning",
		"R, python, ML, python again",
		"nothing relevant here",
		"",
		"ML ML ML",
	}
	n := newLemmaNormalizer(t)

	first := FindTopics(ads, set, n)
	second := FindTopics(ads, set, n)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FindTopics() not idempotent: %v vs %v", first, second)
	}

	for i, kc := range first {
		if kc.Count <= 0 || kc.Count > len(ads) {
			t.Errorf("count for %s = %d, want 1..%d", kc.Keyword, kc.Count, len(ads))
		}
		if i > 0 && first[i-1].Count < kc.Count {
			t.Errorf("counts not descending at %d: %v", i, first)
		}
	}
}

func TestCountNormalized_MatchesAfterLemmatization(t *testing.T) {
	set := mustCompile(t, Entry{"dashboard", `\bdashboard\b`})
	normalized := NormalizeAll([]string{"Built Dashboards daily"}, newLemmaNormalizer(t))

	if normalized[0] != "built dashboard daily" {
		t.Fatalf("NormalizeAll() = %q", normalized[0])
	}
	got := CountNormalized(normalized, set)
	if n, _ := got.Get("dashboard"); n != 1 {
		t.Errorf("dashboard count = %d, want 1", n)
	}
}
