package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mavhu/models"
	"mavhu/portal"
)

type stubBackend struct {
	mu        sync.Mutex
	companies []models.Company
	listErr   error
	reports   map[string]*models.CropYieldReport
	reportErr map[string]error
	delay     map[string]time.Duration
	calls     int
}

func (s *stubBackend) ListCompanies(ctx context.Context, page, limit int) (*portal.CompanyPage, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &portal.CompanyPage{
		Companies: s.companies,
		Page:      page,
		Limit:     limit,
		Total:     len(s.companies),
	}, nil
}

func (s *stubBackend) GetCropYieldForecast(ctx context.Context, companyID string, year int) (*models.CropYieldReport, error) {
	s.mu.Lock()
	s.calls++
	d := s.delay[companyID]
	s.mu.Unlock()
	if d > 0 {
		time.Sleep(d)
	}
	if err := s.reportErr[companyID]; err != nil {
		return nil, err
	}
	r, ok := s.reports[companyID]
	if !ok {
		return nil, errors.New("No crop yield forecast is available for this company yet.")
	}
	return r, nil
}

func reportFor(name string) *models.CropYieldReport {
	return &models.CropYieldReport{
		CompanyInfo: models.ReportCompany{
			ID:   name,
			Name: name,
			AreaOfInterest: &models.AreaOfInterest{
				Name: "farm",
				Coordinates: []models.Coordinate{
					{Lat: -17, Lon: 30},
					{Lat: -19, Lon: 32},
				},
			},
		},
		ReportingPeriod: models.ReportingPeriod{Year: 2025},
	}
}

func newStub() *stubBackend {
	return &stubBackend{
		companies: []models.Company{{ID: primitive.NewObjectID(), Name: "Acme"}},
		reports:   map[string]*models.CropYieldReport{"acme": reportFor("acme")},
		reportErr: map[string]error{},
		delay:     map[string]time.Duration{},
	}
}

func TestStartWithoutCompanyLandsOnSelector(t *testing.T) {
	c := New(newStub())
	c.Start(context.Background(), "")

	snap := c.Snapshot()
	assert.Equal(t, StateSelectCompany, snap.State)
	assert.Len(t, snap.Companies, 1)
	assert.Nil(t, snap.Report)
}

func TestStartWithCompanyLoadsReport(t *testing.T) {
	c := New(newStub())
	c.Start(context.Background(), "acme")

	snap := c.Snapshot()
	require.Equal(t, StateLoaded, snap.State)
	require.NotNil(t, snap.Report)
	assert.Equal(t, "acme", snap.Report.CompanyInfo.ID)

	// map view derived from the polygon centroid
	require.True(t, snap.Map.OK)
	assert.InDelta(t, -18, snap.Map.Center.Lat, 1e-9)
	assert.InDelta(t, 31, snap.Map.Center.Lon, 1e-9)
}

func TestStartCompanyListFailure(t *testing.T) {
	stub := newStub()
	stub.listErr = errors.New("Failed to load companies. Please check your connection and try again.")
	c := New(stub)
	c.Start(context.Background(), "acme")

	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, stub.listErr.Error(), snap.Err)
}

func TestReportFailureWithoutPriorData(t *testing.T) {
	c := New(newStub())
	c.Start(context.Background(), "ghost")

	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.NotEmpty(t, snap.Err)
}

func TestStaleWhileError(t *testing.T) {
	stub := newStub()
	c := New(stub)
	c.Start(context.Background(), "acme")
	require.Equal(t, StateLoaded, c.Snapshot().State)

	stub.reportErr["acme"] = errors.New("The ESG reporting service is temporarily unavailable. Please try again later.")
	c.Refresh(context.Background())

	snap := c.Snapshot()
	assert.Equal(t, StateLoaded, snap.State, "last good report stays on screen")
	require.NotNil(t, snap.Report)
	assert.Equal(t, "acme", snap.Report.CompanyInfo.ID)
	assert.Equal(t, stub.reportErr["acme"].Error(), snap.Err)
	assert.False(t, snap.Refreshing)
}

func TestSelectYearRefetches(t *testing.T) {
	stub := newStub()
	c := New(stub)
	c.Start(context.Background(), "acme")
	before := stub.calls

	c.SelectYear(context.Background(), 2024)
	snap := c.Snapshot()
	assert.Equal(t, 2024, snap.Year)
	assert.Equal(t, before+1, stub.calls)
}

func TestLatestRequestWins(t *testing.T) {
	stub := newStub()
	stub.reports["slow"] = reportFor("slow")
	stub.reports["fast"] = reportFor("fast")
	stub.delay["slow"] = 150 * time.Millisecond

	c := New(stub)
	c.Start(context.Background(), "acme")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.SelectCompany(context.Background(), "slow")
	}()
	time.Sleep(30 * time.Millisecond) // let the slow fetch take its token
	c.SelectCompany(context.Background(), "fast")
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, "fast", snap.CompanyID)
	require.NotNil(t, snap.Report)
	assert.Equal(t, "fast", snap.Report.CompanyInfo.ID, "stale slow response must not overwrite the newer one")
	assert.Equal(t, StateLoaded, snap.State)
}
