package report

import (
	"errors"
	"testing"

	"jobinsights/internal/models"
)

func TestProject(t *testing.T) {
	counts := models.KeywordCounts{
		{Keyword: "python", Count: 2},
		{Keyword: "sql", Count: 1},
		{Keyword: "excel", Count: 2},
	}

	got, err := Project(counts, 3)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	want := []struct {
		rank    int
		keyword string
		display int
	}{
		{1, "python", 66},
		{2, "excel", 66},
		{3, "sql", 33},
	}
	if len(got) != len(want) {
		t.Fatalf("Project() returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Rank != w.rank || got[i].Keyword != w.keyword || got[i].DisplayPercent != w.display {
			t.Errorf("entry %d = %+v, want rank %d %s %d%%", i, got[i], w.rank, w.keyword, w.display)
		}
	}
	if got[0].Percent < 66.66 || got[0].Percent > 66.67 {
		t.Errorf("python percent = %f, want ~66.67", got[0].Percent)
	}
}

func TestProject_DisplayPercent(t *testing.T) {
	tests := []struct {
		count, total int
		want         int
	}{
		{29, 100, 29},
		{57, 100, 57},
		{58, 100, 58},
		{1, 3, 33},
		{2, 3, 66},
		{7, 7, 100},
		{0, 5, 0},
	}

	for _, tt := range tests {
		got, err := Project(models.KeywordCounts{{Keyword: "k", Count: tt.count}}, tt.total)
		if err != nil {
			t.Fatalf("Project() error = %v", err)
		}
		if got[0].DisplayPercent != tt.want {
			t.Errorf("%d/%d DisplayPercent = %d, want %d", tt.count, tt.total, got[0].DisplayPercent, tt.want)
		}
	}
}

func TestProject_EmptySelection(t *testing.T) {
	tests := []struct {
		name  string
		total int
	}{
		{"zero total", 0},
		{"negative total", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(models.KeywordCounts{}, tt.total)
			if !errors.Is(err, ErrEmptyResult) {
				t.Errorf("Project() error = %v, want ErrEmptyResult", err)
			}
			_, err = ProjectCategories(models.CategoryCounts{}, tt.total)
			if !errors.Is(err, ErrEmptyResult) {
				t.Errorf("ProjectCategories() error = %v, want ErrEmptyResult", err)
			}
		})
	}
}

func TestProject_RanksArePermutation(t *testing.T) {
	counts := models.KeywordCounts{
		{Keyword: "a", Count: 1}, {Keyword: "b", Count: 5}, {Keyword: "c", Count: 3},
		{Keyword: "d", Count: 5}, {Keyword: "e", Count: 1}, {Keyword: "f", Count: 0},
	}

	got, err := Project(counts, 10)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	seen := make(map[int]bool)
	for i, r := range got {
		if r.Rank != i+1 || seen[r.Rank] {
			t.Errorf("entry %d has rank %d", i, r.Rank)
		}
		seen[r.Rank] = true
		if i > 0 && got[i-1].Count < r.Count {
			t.Errorf("counts increase at rank %d", r.Rank)
		}
	}

	// Ties keep input order: b before d, a before e.
	order := ""
	for _, r := range got {
		order += r.Keyword
	}
	if order != "bdcaef" {
		t.Errorf("rank order = %s, want bdcaef", order)
	}
}

func TestProjectCategories(t *testing.T) {
	counts := models.CategoryCounts{
		{Category: "Languages", Keywords: models.KeywordCounts{{Keyword: "python", Count: 4}}},
		{Category: "Cloud", Keywords: models.KeywordCounts{}},
	}

	got, err := ProjectCategories(counts, 8)
	if err != nil {
		t.Fatalf("ProjectCategories() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ProjectCategories() returned %d categories, want 2", len(got))
	}
	if got[0].Total != 4 || got[0].Keywords[0].DisplayPercent != 50 {
		t.Errorf("Languages = %+v", got[0])
	}
	if got[1].Category != "Cloud" || len(got[1].Keywords) != 0 {
		t.Errorf("Cloud = %+v, want empty table", got[1])
	}
}

func TestTopN(t *testing.T) {
	ranked := []RankedKeyword{{Rank: 1}, {Rank: 2}, {Rank: 3}}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"fewer than available", 2, 2},
		{"exactly available", 3, 3},
		{"more than available", 10, 3},
		{"zero", 0, 0},
		{"negative means all", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopN(ranked, tt.n); len(got) != tt.want {
				t.Errorf("TopN(%d) returned %d entries, want %d", tt.n, len(got), tt.want)
			}
		})
	}
}
