package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobinsights/internal/insights"
	"jobinsights/internal/keywords"
	"jobinsights/internal/models"
	"jobinsights/internal/testutil"
)

func newTestInsights(t *testing.T) *insights.Context {
	t.Helper()

	artifacts, err := keywords.LoadArtifactsFS(fstest.MapFS{
		"keyword_group_patterns.yaml":     {Data: []byte(testutil.GroupPatterns)},
		"keyword_variation_patterns.yaml": {Data: []byte(testutil.VariationPatterns)},
		"keyword_categories.yaml":         {Data: []byte(testutil.Categories)},
	}, keywords.DefaultFiles)
	require.NoError(t, err)

	ads := []models.JobAd{
		{Title: "Data Analyst", ExperienceLevel: "Entry level", Description: "Python and SQL"},
		{Title: "Data Analyst", ExperienceLevel: "Associate", Description: "Excel and SQL"},
		{Title: "Data Scientist", ExperienceLevel: "Director", Description: "Python"},
	}

	ic, err := insights.NewContext(ads, artifacts, keywords.NormalizerFunc(strings.ToLower), insights.Settings{})
	require.NoError(t, err)
	return ic
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func doGet(t *testing.T, app *fiber.App, target string) (int, envelope) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func newTestApp(t *testing.T) *fiber.App {
	h := NewReportHandler(newTestInsights(t))
	app := fiber.New()
	app.Get("/api/v1/report", h.Report)
	app.Get("/api/v1/filters", h.Filters)
	return app
}

func TestReportHandler_Report(t *testing.T) {
	app := newTestApp(t)

	status, env := doGet(t, app, "/api/v1/report?title=Data+Analyst&experience=Entry+level&experience=Associate")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", env.Status)

	var r insights.Report
	require.NoError(t, json.Unmarshal(env.Data, &r))
	assert.Equal(t, 2, r.TotalJobs)
	assert.False(t, r.Empty)
	assert.Equal(t, []string{"Entry level", "Associate"}, r.Filter.ExperienceLevels)
	require.NotEmpty(t, r.TopSkills)
	assert.Equal(t, "sql", r.TopSkills[0].Keyword)
	assert.Equal(t, 100, r.TopSkills[0].DisplayPercent)
}

func TestReportHandler_Defaults(t *testing.T) {
	app := newTestApp(t)

	status, env := doGet(t, app, "/api/v1/report")
	require.Equal(t, fiber.StatusOK, status)

	var r insights.Report
	require.NoError(t, json.Unmarshal(env.Data, &r))
	assert.Equal(t, "Data Analyst", r.Filter.Title)
	assert.Equal(t, []string{"Entry level"}, r.Filter.ExperienceLevels)
	assert.Equal(t, 1, r.TotalJobs)
}

func TestReportHandler_EmptySelection(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		target string
	}{
		{"no levels", "/api/v1/report?title=Data+Scientist&experience="},
		{"no matching ads", "/api/v1/report?title=Data+Scientist&experience=Entry+level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doGet(t, app, tt.target)
			require.Equal(t, fiber.StatusOK, status)

			var r insights.Report
			require.NoError(t, json.Unmarshal(env.Data, &r))
			assert.True(t, r.Empty)
			assert.Equal(t, "no data for this selection", r.Message)
			assert.Zero(t, r.TotalJobs)
		})
	}
}

func TestReportHandler_BadFilter(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		target string
	}{
		{"unknown title", "/api/v1/report?title=Astronaut"},
		{"unknown level", "/api/v1/report?experience=Intern"},
		{"control characters", "/api/v1/report?title=Data%0AAnalyst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doGet(t, app, tt.target)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "error", env.Status)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestReportHandler_Filters(t *testing.T) {
	app := newTestApp(t)

	status, env := doGet(t, app, "/api/v1/filters")
	require.Equal(t, fiber.StatusOK, status)

	var data struct {
		Options insights.Options `json:"options"`
		Default insights.Filter  `json:"default"`
		TopN    int              `json:"top_n"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"Data Analyst", "Data Scientist"}, data.Options.Titles)
	assert.Equal(t, []string{"Entry level", "Associate", "Director"}, data.Options.ExperienceLevels)
	assert.Equal(t, "Data Analyst", data.Default.Title)
	assert.Equal(t, 10, data.TopN)
}
