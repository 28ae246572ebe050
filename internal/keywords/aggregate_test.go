package keywords

import (
	"errors"
	"reflect"
	"testing"

	"jobinsights/internal/models"
)

func mustCategories(t *testing.T, categories ...Category) *CategorySet {
	t.Helper()
	set, err := NewCategorySet("test", categories)
	if err != nil {
		t.Fatalf("NewCategorySet() error = %v", err)
	}
	return set
}

func TestAggregateByCategory_ExcludesNonMembers(t *testing.T) {
	categories := mustCategories(t, Category{Name: "Programming", Keywords: []string{"python", "sql"}})
	counts := models.KeywordCounts{{Keyword: "java", Count: 5}, {Keyword: "python", Count: 2}, {Keyword: "sql", Count: 1}}

	got := AggregateByCategory(counts, categories)
	want := models.CategoryCounts{
		{Category: "Programming", Keywords: models.KeywordCounts{{Keyword: "python", Count: 2}, {Keyword: "sql", Count: 1}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByCategory() = %v, want %v", got, want)
	}
}

func TestAggregateByCategory_KeepsEmptyCategories(t *testing.T) {
	categories := mustCategories(t,
		Category{Name: "Programming", Keywords: []string{"python"}},
		Category{Name: "Cloud", Keywords: []string{"aws", "gcp"}},
	)
	counts := models.KeywordCounts{{Keyword: "python", Count: 4}}

	got := AggregateByCategory(counts, categories)
	if len(got) != 2 {
		t.Fatalf("AggregateByCategory() returned %d categories, want 2", len(got))
	}
	cloud, ok := got.Get("Cloud")
	if !ok {
		t.Fatal("Cloud category missing from result")
	}
	if cloud == nil || len(cloud) != 0 {
		t.Errorf("Cloud = %#v, want empty non-nil mapping", cloud)
	}
}

func TestAggregateByCategory_OmitsAbsentKeywords(t *testing.T) {
	categories := mustCategories(t, Category{Name: "BI", Keywords: []string{"tableau", "power bi", "looker"}})
	counts := models.KeywordCounts{{Keyword: "looker", Count: 3}, {Keyword: "tableau", Count: 1}}

	got := AggregateByCategory(counts, categories)
	bi, _ := got.Get("BI")
	if _, ok := bi.Get("power bi"); ok {
		t.Error("power bi should be omitted, not zero-filled")
	}
	// Order follows category membership, not the counts.
	if !reflect.DeepEqual(bi.Keywords(), []string{"tableau", "looker"}) {
		t.Errorf("BI keywords = %v, want [tableau looker]", bi.Keywords())
	}
}

func TestAggregateByCategory_TiesFollowMembershipOrder(t *testing.T) {
	categories := mustCategories(t, Category{Name: "Databases", Keywords: []string{"postgres", "mysql", "sqlite"}})
	counts := models.KeywordCounts{{Keyword: "sqlite", Count: 4}, {Keyword: "mysql", Count: 4}, {Keyword: "postgres", Count: 4}}

	got := AggregateByCategory(counts, categories)
	dbs, _ := got.Get("Databases")
	want := models.KeywordCounts{{Keyword: "postgres", Count: 4}, {Keyword: "mysql", Count: 4}, {Keyword: "sqlite", Count: 4}}
	if !reflect.DeepEqual(dbs, want) {
		t.Errorf("Databases = %v, want %v", dbs, want)
	}
}

func TestAggregateByCategory_Partition(t *testing.T) {
	categories := mustCategories(t,
		Category{Name: "Languages", Keywords: []string{"python", "r", "sql"}},
		Category{Name: "Cloud", Keywords: []string{"aws", "azure"}},
		Category{Name: "Empty"},
	)
	counts := models.KeywordCounts{{Keyword: "python", Count: 9}, {Keyword: "aws", Count: 7}, {Keyword: "sql", Count: 7}, {Keyword: "excel", Count: 4}, {Keyword: "r", Count: 2}}

	got := AggregateByCategory(counts, categories)

	for _, cc := range got {
		members := make(map[string]bool)
		for _, c := range categories.Categories() {
			if c.Name == cc.Category {
				for _, kw := range c.Keywords {
					members[kw] = true
				}
			}
		}
		for _, kc := range cc.Keywords {
			if !members[kc.Keyword] {
				t.Errorf("%s contains non-member %s", cc.Category, kc.Keyword)
			}
		}
	}

	for _, kc := range counts {
		if _, ok := categories.CategoryOf(kc.Keyword); !ok {
			continue
		}
		sum := 0
		for _, cc := range got {
			if n, ok := cc.Keywords.Get(kc.Keyword); ok {
				sum += n
			}
		}
		if sum != kc.Count {
			t.Errorf("summed count for %s = %d, want %d", kc.Keyword, sum, kc.Count)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	counts := models.CategoryCounts{
		{Category: "Languages", Keywords: models.KeywordCounts{{Keyword: "python", Count: 9}, {Keyword: "sql", Count: 7}}},
		{Category: "Cloud", Keywords: models.KeywordCounts{}},
	}

	got := CategoryTotals(counts)
	want := []CategoryTotal{{"Languages", 16}, {"Cloud", 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryTotals() = %v, want %v", got, want)
	}
}

func TestNewCategorySet_MemberCounts(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		wantErr    error
		wantLen    []int
	}{
		{
			name:       "distinct members",
			categories: []Category{{"A", []string{"x", "y"}}, {"B", []string{"z"}}},
			wantLen:    []int{2, 1},
		},
		{
			name:       "repeated member in one category is collapsed",
			categories: []Category{{"A", []string{"x", "x", "y"}}},
			wantLen:    []int{2},
		},
		{
			name:       "member in two categories",
			categories: []Category{{"A", []string{"x"}}, {"B", []string{"x"}}},
			wantErr:    ErrDuplicateMember,
		},
		{
			name:       "duplicate category name",
			categories: []Category{{"A", []string{"x"}}, {"A", []string{"y"}}},
			wantErr:    ErrDuplicateKeyword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewCategorySet("categories.yaml", tt.categories)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !IsConfigError(err) {
					t.Fatalf("NewCategorySet() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCategorySet() error = %v", err)
			}
			for i, c := range set.Categories() {
				if len(c.Keywords) != tt.wantLen[i] {
					t.Errorf("%s has %d keywords, want %d", c.Name, len(c.Keywords), tt.wantLen[i])
				}
			}
		})
	}
}
