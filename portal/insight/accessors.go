// Package insight derives UI-facing views from a fetched crop-yield
// report: narrowed summaries, chart-primitive data and map geometry. Every
// function here is pure — the report document is never mutated.
package insight

import "mavhu/models"

// YieldSummary is the headline card for the yield forecast tab.
type YieldSummary struct {
	CropType       string
	PredictedYield float64
	Unit           string
	Confidence     float64
	ConfidenceLvl  string
	NDVIPeak       *float64
	Trend          string
}

// YieldForecastSummary narrows the report to the yield headline. Missing
// sub-trees yield zero values, never a panic.
func YieldForecastSummary(r *models.CropYieldReport) YieldSummary {
	var s YieldSummary
	if r == nil {
		return s
	}
	if f := r.YieldForecast; f != nil {
		s.CropType = f.CropType
		s.PredictedYield = f.PredictedYield
		s.Unit = f.Unit
		if s.Unit == "" {
			s.Unit = "t/ha"
		}
		if f.NDVI != nil {
			s.NDVIPeak = f.NDVI.Peak
			s.Trend = f.NDVI.Trend
		}
	}
	if c := r.Confidence; c != nil {
		s.Confidence = c.Overall
		s.ConfidenceLvl = c.Level
	}
	return s
}

// RiskSummary is the risk tab headline: the overall score plus per-category
// scores and the highest-severity named risks.
type RiskSummary struct {
	OverallScore float64
	OverallLevel string
	Categories   []models.RiskCategory
	TopRisks     []models.DetailedRisk
}

// RiskAssessmentSummary lists at most top risks with severity "high" or
// "critical", in document order.
func RiskAssessmentSummary(r *models.CropYieldReport) RiskSummary {
	var s RiskSummary
	if r == nil || r.RiskAssessment == nil {
		return s
	}
	ra := r.RiskAssessment
	s.OverallScore = ra.OverallScore
	s.OverallLevel = ra.OverallLevel
	s.Categories = ra.Categories
	for _, d := range ra.Detailed {
		if d.Severity == "high" || d.Severity == "critical" {
			s.TopRisks = append(s.TopRisks, d)
		}
	}
	return s
}

// EnvironmentalSummary returns the per-category summaries (water, energy,
// emissions, waste) with their KPIs.
func EnvironmentalSummary(r *models.CropYieldReport) []models.EnvironmentalCategory {
	if r == nil || r.Environmental == nil {
		return nil
	}
	return r.Environmental.Categories
}

// CarbonData returns the carbon accounting sub-tree, empty when absent.
func CarbonData(r *models.CropYieldReport) models.CarbonAccounting {
	if r == nil || r.Carbon == nil {
		return models.CarbonAccounting{}
	}
	return *r.Carbon
}

// FirstYearMonthlyCarbon returns the monthly rows of the first carbon
// year, or an empty slice when no yearly data exists.
func FirstYearMonthlyCarbon(r *models.CropYieldReport) []models.MonthlyCarbon {
	if r == nil || r.Carbon == nil || len(r.Carbon.Years) == 0 {
		return []models.MonthlyCarbon{}
	}
	if m := r.Carbon.Years[0].Monthly; m != nil {
		return m
	}
	return []models.MonthlyCarbon{}
}

// SatelliteIndicators returns the latest remote-sensing observation.
func SatelliteIndicators(r *models.CropYieldReport) models.SatelliteIndicators {
	if r == nil || r.Satellite == nil {
		return models.SatelliteIndicators{}
	}
	return *r.Satellite
}

// ConfidenceBreakdown returns the confidence score with its components.
func ConfidenceBreakdown(r *models.CropYieldReport) models.ConfidenceScore {
	if r == nil || r.Confidence == nil {
		return models.ConfidenceScore{}
	}
	return *r.Confidence
}

// NDVIIndicators returns the NDVI block of the yield forecast.
func NDVIIndicators(r *models.CropYieldReport) models.NDVIIndicators {
	if r == nil || r.YieldForecast == nil || r.YieldForecast.NDVI == nil {
		return models.NDVIIndicators{}
	}
	return *r.YieldForecast.NDVI
}

// CalculationFactors returns the factors behind the yield forecast.
func CalculationFactors(r *models.CropYieldReport) []models.CalculationFactor {
	if r == nil || r.YieldForecast == nil {
		return nil
	}
	return r.YieldForecast.Factors
}

// SeasonalAdvisory returns the advisory text, "" when absent.
func SeasonalAdvisory(r *models.CropYieldReport) string {
	if r == nil {
		return ""
	}
	return r.SeasonalAdvisory
}

// ExecutiveSummary returns the executive summary text, "" when absent.
func ExecutiveSummary(r *models.CropYieldReport) string {
	if r == nil {
		return ""
	}
	return r.ExecutiveSummary
}

// Metadata returns the report's version stamps.
func Metadata(r *models.CropYieldReport) models.ReportMetadata {
	if r == nil {
		return models.ReportMetadata{}
	}
	return r.Metadata
}

// CompanyInfo returns the company snapshot embedded in the report.
func CompanyInfo(r *models.CropYieldReport) models.ReportCompany {
	if r == nil {
		return models.ReportCompany{}
	}
	return r.CompanyInfo
}

// Graphs returns the named chart payload bundle, nil when absent.
func Graphs(r *models.CropYieldReport) map[string]models.Graph {
	if r == nil {
		return nil
	}
	return r.Graphs
}

// Recommendations returns the recommendation list, possibly empty.
func Recommendations(r *models.CropYieldReport) []models.Recommendation {
	if r == nil {
		return nil
	}
	return r.Recommendations
}

// ReportingPeriod returns the reported year and the years a report exists
// for.
func ReportingPeriod(r *models.CropYieldReport) models.ReportingPeriod {
	if r == nil {
		return models.ReportingPeriod{}
	}
	return r.ReportingPeriod
}
