package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mavhu/models"
)

func sampleReport() *models.CropYieldReport {
	peak := 0.74
	return &models.CropYieldReport{
		CompanyInfo:     models.ReportCompany{ID: "c1", Name: "Acme Farms"},
		ReportingPeriod: models.ReportingPeriod{Year: 2025, AvailableYears: []int{2024, 2025}},
		Confidence:      &models.ConfidenceScore{Overall: 0.82, Level: "high"},
		YieldForecast: &models.YieldForecast{
			CropType:       "maize",
			PredictedYield: 4.2,
			NDVI:           &models.NDVIIndicators{Peak: &peak, Trend: "rising"},
			Factors: []models.CalculationFactor{
				{Name: "rainfall", Value: 640, Unit: "mm", Influence: "positive"},
			},
		},
		RiskAssessment: &models.RiskAssessment{
			OverallScore: 42,
			OverallLevel: "medium",
			Categories:   []models.RiskCategory{{Name: "drought", Score: 55}},
			Detailed: []models.DetailedRisk{
				{Name: "late rains", Severity: "high"},
				{Name: "input costs", Severity: "low"},
			},
		},
		Carbon: &models.CarbonAccounting{
			Years: []models.CarbonYear{
				{
					Year: 2024, Sequestration: 120, Emissions: 80, Net: -40,
					Monthly: []models.MonthlyCarbon{{Month: "2024-01", Sequestration: 10, Emissions: 7}},
				},
				{Year: 2025, Sequestration: 130, Emissions: 90, Net: -40},
			},
		},
		SeasonalAdvisory: "Plant early.",
		ExecutiveSummary: "A good year.",
	}
}

func TestYieldForecastSummary(t *testing.T) {
	s := YieldForecastSummary(sampleReport())
	assert.Equal(t, "maize", s.CropType)
	assert.Equal(t, 4.2, s.PredictedYield)
	assert.Equal(t, "t/ha", s.Unit) // default unit filled in
	assert.Equal(t, 0.82, s.Confidence)
	require.NotNil(t, s.NDVIPeak)
	assert.Equal(t, 0.74, *s.NDVIPeak)
}

func TestRiskAssessmentSummaryFiltersTopRisks(t *testing.T) {
	s := RiskAssessmentSummary(sampleReport())
	assert.Equal(t, 42.0, s.OverallScore)
	require.Len(t, s.TopRisks, 1)
	assert.Equal(t, "late rains", s.TopRisks[0].Name)
}

func TestFirstYearMonthlyCarbon(t *testing.T) {
	got := FirstYearMonthlyCarbon(sampleReport())
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01", got[0].Month)

	// no carbon data at all: empty slice, not nil panic
	assert.Equal(t, []models.MonthlyCarbon{}, FirstYearMonthlyCarbon(&models.CropYieldReport{}))

	// years present but no monthly rows
	r := &models.CropYieldReport{Carbon: &models.CarbonAccounting{Years: []models.CarbonYear{{Year: 2025}}}}
	assert.Equal(t, []models.MonthlyCarbon{}, FirstYearMonthlyCarbon(r))
}

func TestAccessorsTotalOverSparseReports(t *testing.T) {
	// Every accessor must tolerate an empty document and a nil pointer.
	for _, r := range []*models.CropYieldReport{nil, {}} {
		assert.NotPanics(t, func() {
			YieldForecastSummary(r)
			RiskAssessmentSummary(r)
			EnvironmentalSummary(r)
			CarbonData(r)
			FirstYearMonthlyCarbon(r)
			SatelliteIndicators(r)
			ConfidenceBreakdown(r)
			NDVIIndicators(r)
			CalculationFactors(r)
			SeasonalAdvisory(r)
			ExecutiveSummary(r)
			Metadata(r)
			CompanyInfo(r)
			Graphs(r)
			Recommendations(r)
			ReportingPeriod(r)
		})
	}
}

func TestSimpleAccessors(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, "Plant early.", SeasonalAdvisory(r))
	assert.Equal(t, "A good year.", ExecutiveSummary(r))
	assert.Equal(t, "Acme Farms", CompanyInfo(r).Name)
	assert.Equal(t, []int{2024, 2025}, ReportingPeriod(r).AvailableYears)
	require.Len(t, CalculationFactors(r), 1)
	assert.Equal(t, "rainfall", CalculationFactors(r)[0].Name)
}
