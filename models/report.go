package models

import "time"

// CropYieldReport is the full crop-yield-forecast document served by the
// ESG dashboard endpoint. It is produced by the external processor and
// treated as read-only once fetched: the portal only selects and reshapes
// sub-trees, it never mutates the document.
type CropYieldReport struct {
	Metadata        ReportMetadata        `json:"metadata"`
	CompanyInfo     ReportCompany         `json:"company_info"`
	ReportingPeriod ReportingPeriod       `json:"reporting_period"`
	Confidence      *ConfidenceScore      `json:"confidence_score,omitempty"`
	YieldForecast   *YieldForecast        `json:"yield_forecast,omitempty"`
	RiskAssessment  *RiskAssessment       `json:"risk_assessment,omitempty"`
	Environmental   *EnvironmentalMetrics `json:"environmental_metrics,omitempty"`
	Carbon          *CarbonAccounting     `json:"carbon_emission_accounting,omitempty"`
	Satellite       *SatelliteIndicators  `json:"satellite_indicators,omitempty"`

	// Named chart-ready payloads keyed by graph name, e.g. "yield_trend".
	Graphs map[string]Graph `json:"graphs,omitempty"`

	SeasonalAdvisory string           `json:"seasonal_advisory,omitempty"`
	ExecutiveSummary string           `json:"executive_summary,omitempty"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
}

type ReportMetadata struct {
	APIVersion   string    `json:"api_version"`
	ModelVersion string    `json:"model_version,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// ReportCompany is the company snapshot embedded in a report. It may lag
// behind the companies collection; the report is authoritative for the
// state the analytics were computed against.
type ReportCompany struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Industry       string          `json:"industry,omitempty"`
	Country        string          `json:"country,omitempty"`
	AreaOfInterest *AreaOfInterest `json:"area_of_interest,omitempty"`
}

type ReportingPeriod struct {
	Year           int   `json:"year"`
	AvailableYears []int `json:"available_years,omitempty"`
}

type ConfidenceScore struct {
	Overall    float64               `json:"overall"`
	Level      string                `json:"level,omitempty"` // low | medium | high
	Components []ConfidenceComponent `json:"components,omitempty"`
}

type ConfidenceComponent struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight,omitempty"`
}

type YieldForecast struct {
	CropType       string              `json:"crop_type,omitempty"`
	PredictedYield float64             `json:"predicted_yield"`
	Unit           string              `json:"unit,omitempty"` // default "t/ha"
	Factors        []CalculationFactor `json:"calculation_factors,omitempty"`
	NDVI           *NDVIIndicators     `json:"ndvi_indicators,omitempty"`
}

type CalculationFactor struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
	Influence string  `json:"influence,omitempty"` // positive | negative | neutral
}

type NDVIIndicators struct {
	Current     *float64   `json:"current,omitempty"`
	SeasonalAvg *float64   `json:"seasonal_avg,omitempty"`
	Peak        *float64   `json:"peak,omitempty"`
	PeakDate    *time.Time `json:"peak_date,omitempty"`
	Trend       string     `json:"trend,omitempty"` // rising | falling | stable
}

type RiskAssessment struct {
	OverallScore float64        `json:"overall_score"`
	OverallLevel string         `json:"overall_level,omitempty"` // low | medium | high | critical
	Categories   []RiskCategory `json:"categories,omitempty"`
	Detailed     []DetailedRisk `json:"detailed_risks,omitempty"`
}

type RiskCategory struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Level string  `json:"level,omitempty"`
}

type DetailedRisk struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Severity    string  `json:"severity,omitempty"`
	Probability float64 `json:"probability,omitempty"`
	Description string  `json:"description,omitempty"`
	Mitigation  string  `json:"mitigation,omitempty"`
}

// EnvironmentalMetrics groups KPIs by category (water, energy, emissions,
// waste) with a per-category summary line.
type EnvironmentalMetrics struct {
	Categories []EnvironmentalCategory `json:"categories,omitempty"`
}

type EnvironmentalCategory struct {
	Name    string             `json:"name"`
	Summary string             `json:"summary,omitempty"`
	KPIs    []EnvironmentalKPI `json:"kpis,omitempty"`
}

type EnvironmentalKPI struct {
	Name   string   `json:"name"`
	Value  float64  `json:"value"`
	Unit   string   `json:"unit,omitempty"`
	Target *float64 `json:"target,omitempty"`
	Status string   `json:"status,omitempty"` // on_track | at_risk | off_track
}

// CarbonAccounting is the multi-year sequestration/emissions breakdown.
// All quantities are tCO2e.
type CarbonAccounting struct {
	Years           []CarbonYear       `json:"years,omitempty"`
	EmissionFactors []EmissionFactor   `json:"emission_factors,omitempty"`
	GWP             map[string]float64 `json:"global_warming_potentials,omitempty"`
}

type CarbonYear struct {
	Year          int             `json:"year"`
	Sequestration float64         `json:"sequestration_tco2e"`
	Emissions     float64         `json:"emissions_tco2e"`
	Net           float64         `json:"net_tco2e"`
	Monthly       []MonthlyCarbon `json:"monthly,omitempty"`
}

type MonthlyCarbon struct {
	Month         string  `json:"month"` // "2024-03"
	Sequestration float64 `json:"sequestration_tco2e"`
	Emissions     float64 `json:"emissions_tco2e"`
}

type EmissionFactor struct {
	Source string  `json:"source"`
	Factor float64 `json:"factor"`
	Unit   string  `json:"unit,omitempty"`
}

// SatelliteIndicators — latest remote-sensing observation for the area of
// interest, as written by the processor.
type SatelliteIndicators struct {
	NDVI          *float64   `json:"ndvi,omitempty"`
	EVI           *float64   `json:"evi,omitempty"`
	SoilMoisture  *float64   `json:"soil_moisture,omitempty"`
	LandSurfTempC *float64   `json:"land_surface_temp_c,omitempty"`
	CloudCoverPct *float64   `json:"cloud_cover_pct,omitempty"`
	Collection    string     `json:"collection,omitempty"` // e.g. "HLSS30_2.0"
	CapturedAt    *time.Time `json:"captured_at,omitempty"`
}

type Recommendation struct {
	Priority string `json:"priority,omitempty"` // high | medium | low
	Action   string `json:"action"`
}
