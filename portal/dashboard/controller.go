// Package dashboard holds the ESG dashboard screen's state machine: which
// company and year are selected, the last fetched report, and the
// loading/error flags the renderer keys off. Fetches are guarded by a
// per-request generation token so a slow response can never overwrite the
// state of a newer request.
package dashboard

import (
	"context"
	"sync"

	"mavhu/models"
	"mavhu/portal"
	"mavhu/portal/insight"
)

type State string

const (
	StateLoading       State = "loading"
	StateSelectCompany State = "company-selector"
	StateLoaded        State = "loaded"
	StateError         State = "error"
)

// Backend is what the controller needs from the API client.
// *portal.Client satisfies it.
type Backend interface {
	ListCompanies(ctx context.Context, page, limit int) (*portal.CompanyPage, error)
	GetCropYieldForecast(ctx context.Context, companyID string, year int) (*models.CropYieldReport, error)
}

var _ Backend = (*portal.Client)(nil)

// MapView is the derived map placement for the report's area of interest.
type MapView struct {
	Center models.Coordinate
	Zoom   int
	OK     bool
}

// Snapshot is an immutable copy of the screen state.
type Snapshot struct {
	State      State
	Companies  []models.Company
	CompanyID  string
	Year       int // 0 means latest
	Report     *models.CropYieldReport
	Map        MapView
	Err        string // banner message; may be set while State is loaded
	Refreshing bool
}

// Controller serializes all state changes behind one mutex. Methods block
// until their fetch resolves; concurrent calls race safely and the latest
// caller wins.
type Controller struct {
	backend      Backend
	companyLimit int

	mu         sync.Mutex
	gen        uint64
	state      State
	companies  []models.Company
	companyID  string
	year       int
	report     *models.CropYieldReport
	mapView    MapView
	errMsg     string
	refreshing bool
}

func New(backend Backend) *Controller {
	return &Controller{backend: backend, companyLimit: 100, state: StateLoading}
}

// Start loads the company list and, when a company id is already known
// from the route, the report for it. Otherwise the screen lands on the
// company selector.
func (c *Controller) Start(ctx context.Context, companyID string) {
	c.mu.Lock()
	c.state = StateLoading
	c.errMsg = ""
	c.mu.Unlock()

	page, err := c.backend.ListCompanies(ctx, 1, c.companyLimit)

	c.mu.Lock()
	if err != nil {
		c.state = StateError
		c.errMsg = err.Error()
		c.mu.Unlock()
		return
	}
	c.companies = page.Companies
	if companyID == "" {
		c.state = StateSelectCompany
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.fetchReport(ctx, companyID, 0, false)
}

// SelectCompany switches the dashboard to another company, resetting the
// year filter to latest.
func (c *Controller) SelectCompany(ctx context.Context, companyID string) {
	c.fetchReport(ctx, companyID, 0, false)
}

// SelectYear refetches the current company's report for a specific year.
func (c *Controller) SelectYear(ctx context.Context, year int) {
	c.mu.Lock()
	id := c.companyID
	c.mu.Unlock()
	if id == "" {
		return
	}
	c.fetchReport(ctx, id, year, false)
}

// Refresh refetches the current selection behind an independent spinner
// flag, keeping the loaded view on screen.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	id, year := c.companyID, c.year
	c.mu.Unlock()
	if id == "" {
		return
	}
	c.fetchReport(ctx, id, year, true)
}

// fetchReport runs one fetch under a fresh generation token and applies
// the result only if no newer fetch has started meanwhile.
func (c *Controller) fetchReport(ctx context.Context, companyID string, year int, refresh bool) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.companyID = companyID
	c.year = year
	if refresh {
		c.refreshing = true
	} else {
		c.state = StateLoading
	}
	c.errMsg = ""
	c.mu.Unlock()

	report, err := c.backend.GetCropYieldForecast(ctx, companyID, year)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer request owns the screen now; drop this result.
		return
	}
	c.refreshing = false
	if err != nil {
		c.errMsg = err.Error()
		if c.report != nil {
			// Stale-while-error: keep showing the last good report.
			c.state = StateLoaded
		} else {
			c.state = StateError
		}
		return
	}
	c.report = report
	c.mapView = deriveMap(report)
	c.state = StateLoaded
}

func deriveMap(r *models.CropYieldReport) MapView {
	aoi := insight.CompanyInfo(r).AreaOfInterest
	if aoi == nil {
		return MapView{}
	}
	center, ok := insight.MapCenter(aoi.Coordinates)
	if !ok {
		return MapView{}
	}
	return MapView{Center: center, Zoom: insight.MapZoom(aoi.Coordinates), OK: true}
}

// Snapshot returns a copy of the current screen state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	companies := make([]models.Company, len(c.companies))
	copy(companies, c.companies)
	return Snapshot{
		State:      c.state,
		Companies:  companies,
		CompanyID:  c.companyID,
		Year:       c.year,
		Report:     c.report,
		Map:        c.mapView,
		Err:        c.errMsg,
		Refreshing: c.refreshing,
	}
}
