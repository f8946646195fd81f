package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
	"metadata": {"api_version": "1.0", "generated_at": "2026-03-01T00:00:00Z"},
	"company_info": {"id": "c1", "name": "Acme Farms"},
	"reporting_period": {"year": 2025, "available_years": [2023, 2024, 2025]},
	"confidence_score": {"overall": 0.82, "level": "high"},
	"yield_forecast": {
		"crop_type": "maize",
		"predicted_yield": 4.2,
		"unit": "t/ha",
		"ndvi_indicators": {"current": 0.61, "peak": 0.74, "trend": "rising"}
	},
	"graphs": {
		"yield_trend": {
			"labels": ["2023", "2024", "2025"],
			"datasets": [{"label": "yield", "data": [3.8, 4.0, 4.2]}]
		}
	}
}`

func TestGetCropYieldForecastSuccess(t *testing.T) {
	var gotPath, gotYear string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotYear = r.URL.Query().Get("year")
		w.Write([]byte(sampleReport))
	}))
	defer srv.Close()

	c := New(srv.URL)
	r, err := c.GetCropYieldForecast(context.Background(), "abc123", 2025)
	require.NoError(t, err)

	assert.Equal(t, "/esg-dashboard/crop-yield-forecast/abc123", gotPath)
	assert.Equal(t, "2025", gotYear)
	assert.Equal(t, "Acme Farms", r.CompanyInfo.Name)
	assert.Equal(t, 2025, r.ReportingPeriod.Year)
	require.NotNil(t, r.YieldForecast)
	assert.Equal(t, 4.2, r.YieldForecast.PredictedYield)
	require.Contains(t, r.Graphs, "yield_trend")
	assert.Equal(t, []float64{3.8, 4.0, 4.2}, r.Graphs["yield_trend"].Datasets[0].Values())
}

func TestGetCropYieldForecastOmitsZeroYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("year"))
		w.Write([]byte(sampleReport))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetCropYieldForecast(context.Background(), "abc123", 0)
	require.NoError(t, err)
}

func TestGetCropYieldForecastStatusMessages(t *testing.T) {
	cases := map[int]string{
		400: "Invalid request. Please check the selected company and year.",
		401: "Your session has expired. Please sign in again.",
		403: "You do not have permission to view this company's ESG dashboard.",
		404: "No crop yield forecast is available for this company yet.",
		422: "The requested year is outside the company's reporting period.",
		500: "The ESG reporting service hit an internal error. Please try again later.",
		503: "The ESG reporting service is temporarily unavailable. Please try again later.",
	}
	for status, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": "backend detail"})
		}))
		c := New(srv.URL)
		_, err := c.GetCropYieldForecast(context.Background(), "abc123", 0)
		srv.Close()

		require.Error(t, err, status)
		assert.Equal(t, want, err.Error(), "status %d", status)
	}
}

func TestGetCropYieldForecastUnmappedStatus(t *testing.T) {
	// Unmapped status with a server message: the message wins.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		json.NewEncoder(w).Encode(map[string]string{"error": "kettle busy"})
	}))
	c := New(srv.URL)
	_, err := c.GetCropYieldForecast(context.Background(), "abc123", 0)
	srv.Close()
	require.Error(t, err)
	assert.Equal(t, "kettle busy", err.Error())

	// Unmapped status without a body: generic fallback.
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	c = New(srv.URL)
	_, err = c.GetCropYieldForecast(context.Background(), "abc123", 0)
	srv.Close()
	require.Error(t, err)
	assert.Equal(t, "Failed to load the crop yield forecast. Please try again.", err.Error())
}

func TestGetCropYieldForecastIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleReport))
	}))
	defer srv.Close()

	c := New(srv.URL)
	first, err := c.GetCropYieldForecast(context.Background(), "abc123", 2025)
	require.NoError(t, err)
	second, err := c.GetCropYieldForecast(context.Background(), "abc123", 2025)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated fetch differs (-first +second):\n%s", diff)
	}
}
