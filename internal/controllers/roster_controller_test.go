package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/report"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/roster"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/scrape"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/services"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/syncer"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockRosterService struct {
	athletes   models.Roster
	alerts     models.AlertState
	generation int64
	status     syncer.Status

	manualEdits    []models.Roster
	importRows     []roster.ImportRow
	importType     models.CampaignType
	importErr      error
	scrapePlatform scrape.Platform
	purgeBaseline  []string
	dismissed      []string
	pushMeta       *models.SnapshotMeta
	pushErr        error
	refreshErr     error
	restoreID      string
	restoreErr     error
}

func (m *mockRosterService) Roster() (models.Roster, models.AlertState) {
	return m.athletes, m.alerts
}
func (m *mockRosterService) Generation() int64           { return m.generation }
func (m *mockRosterService) Stats() report.CampaignStats { return report.ComputeStats(m.athletes) }
func (m *mockRosterService) Status() syncer.Status       { return m.status }

func (m *mockRosterService) ManualEdit(athletes models.Roster) services.ChangeSummary {
	m.manualEdits = append(m.manualEdits, athletes)
	return services.ChangeSummary{Changes: []report.StatChange{}}
}

func (m *mockRosterService) ImportPerformance(_ context.Context, rows []roster.ImportRow, campaignType models.CampaignType) (*services.ImportResult, error) {
	m.importRows = rows
	m.importType = campaignType
	if m.importErr != nil {
		return nil, m.importErr
	}
	return &services.ImportResult{Outcome: roster.ImportOutcome{RowsProcessed: len(rows)}}, nil
}

func (m *mockRosterService) ImportContacts(_ context.Context, rows []roster.ImportRow) (*services.FillResult, error) {
	m.importRows = rows
	if m.importErr != nil {
		return nil, m.importErr
	}
	return &services.FillResult{Report: roster.FillReport{TotalRowsProcessed: len(rows)}}, nil
}

func (m *mockRosterService) ApplyScrape(_ context.Context, res *scrape.Result, platform scrape.Platform) (*services.ScrapeResult, error) {
	m.scrapePlatform = platform
	return &services.ScrapeResult{Updated: len(res.Metrics), FailedURLs: res.FailedURLs}, nil
}

func (m *mockRosterService) Dedupe() ([]string, services.ChangeSummary) {
	return []string{"jo lee"}, services.ChangeSummary{}
}

func (m *mockRosterService) PurgeToBaseline(baselineNames []string) *services.PurgeResult {
	m.purgeBaseline = baselineNames
	return &services.PurgeResult{Kept: m.athletes}
}

func (m *mockRosterService) FillMockData() (int, services.ChangeSummary) {
	return 3, services.ChangeSummary{}
}

func (m *mockRosterService) Push(_ context.Context) (*models.SnapshotMeta, error) {
	return m.pushMeta, m.pushErr
}

func (m *mockRosterService) RefreshFromRemote(_ context.Context) error { return m.refreshErr }

func (m *mockRosterService) RestoreVersion(_ context.Context, id string) (services.ChangeSummary, error) {
	m.restoreID = id
	return services.ChangeSummary{}, m.restoreErr
}

func (m *mockRosterService) DismissAlert(url string) { m.dismissed = append(m.dismissed, url) }

func (m *mockRosterService) Alerts() models.AlertState { return m.alerts }

func (m *mockRosterService) MissingAccounts() []roster.MissingAccount {
	return roster.MissingAccounts(m.athletes)
}

func (m *mockRosterService) Completeness() []roster.CompletenessEntry {
	return roster.CompletenessReport(m.athletes)
}

type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache                     { return &mockCache{data: make(map[string][]byte)} }
func (m *mockCache) Get(key string) ([]byte, bool) { v, ok := m.data[key]; return v, ok }
func (m *mockCache) Set(key string, value []byte)  { m.data[key] = value }

// --- helpers ---

func newTestRosterController(svc *mockRosterService, cache *mockCache) *RosterController {
	return NewRosterController(&mockLogger{}, svc, cache)
}

// --- GetRoster tests ---

func TestGetRoster_ReturnsDraft(t *testing.T) {
	svc := &mockRosterService{athletes: models.Roster{{ID: "a1", DisplayName: "Jo Lee"}}}
	rc := newTestRosterController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	rc.GetRoster(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Jo Lee")
}

func TestGetRoster_CacheKeyedOnGeneration(t *testing.T) {
	svc := &mockRosterService{athletes: models.Roster{{ID: "a1", DisplayName: "Jo Lee"}}}
	cache := newMockCache()
	rc := newTestRosterController(svc, cache)

	rr := httptest.NewRecorder()
	rc.GetRoster(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	_, cached := cache.Get("roster:g0")
	assert.True(t, cached)

	// a mutation bumps the generation; the stale entry is simply not hit
	svc.generation = 1
	svc.athletes = models.Roster{{ID: "a2", DisplayName: "Sam Reyes"}}
	rr = httptest.NewRecorder()
	rc.GetRoster(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rr.Body.String(), "Sam Reyes")
}

func TestGetRoster_ServesCachedPayload(t *testing.T) {
	svc := &mockRosterService{}
	cache := newMockCache()
	cache.Set("roster:g0", []byte(`{"cached":true}`))
	rc := newTestRosterController(svc, cache)

	rr := httptest.NewRecorder()
	rc.GetRoster(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, `{"cached":true}`, rr.Body.String())
}

// --- UpdateRoster tests ---

func TestUpdateRoster_ManualEdit(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"athletes":[{"id":"a1","displayName":"Jo Lee"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.UpdateRoster(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.manualEdits, 1)
	assert.Equal(t, "Jo Lee", svc.manualEdits[0][0].DisplayName)
}

func TestUpdateRoster_InvalidJSON(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	rc.UpdateRoster(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.manualEdits)
}

// --- import tests ---

func TestImportPerformance_ParsesRowsAndDefaultsCampaignType(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"rows":[{"Name":"Jo Lee","TikTok Views":"1,204"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.ImportPerformance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.importRows, 1)
	assert.Equal(t, "Jo Lee", svc.importRows[0].Name)
	assert.Equal(t, 1204, svc.importRows[0].Data.TikTokViews)
	assert.Equal(t, models.CampaignVideo, svc.importType)
}

func TestImportPerformance_StoryCampaignType(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"rows":[{"Name":"Jo Lee"}],"campaignType":"story"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.ImportPerformance(rr, req)

	assert.Equal(t, models.CampaignStory, svc.importType)
}

func TestImportPerformance_ServiceError(t *testing.T) {
	svc := &mockRosterService{importErr: errors.New("boom")}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"rows":[{"Name":"Jo Lee"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.ImportPerformance(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestImportContacts(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"rows":[{"Name":"Jo Lee","IG Handle":"@jolee"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.ImportContacts(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.importRows, 1)
	assert.Equal(t, "@jolee", svc.importRows[0].Data.InstagramHandle)
}

// --- scrape tests ---

func TestApplyScrape_ValidPlatform(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"platform":"tiktok","result":{"metricsPerUrl":{"u1":{"views":100}}}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.ApplyScrape(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, scrape.PlatformTikTok, svc.scrapePlatform)
}

func TestApplyScrape_UnknownPlatform(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"platform":"myspace","result":{}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.ApplyScrape(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- purge tests ---

func TestPurge_RequiresConfirmation(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"baseline":["Jo Lee"],"confirm":false}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.Purge(rr, req)

	assert.Equal(t, http.StatusPreconditionRequired, rr.Code)
	assert.Nil(t, svc.purgeBaseline)
}

func TestPurge_RejectsEmptyBaseline(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"baseline":[],"confirm":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.Purge(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPurge_Confirmed(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	payload := `{"baseline":["Jo Lee"],"confirm":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	rc.Purge(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Jo Lee"}, svc.purgeBaseline)
}

// --- misc endpoints ---

func TestMockFill(t *testing.T) {
	rc := newTestRosterController(&mockRosterService{}, newMockCache())

	rr := httptest.NewRecorder()
	rc.MockFill(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"filled":3`)
}

func TestGetStats(t *testing.T) {
	svc := &mockRosterService{athletes: models.Roster{{ID: "a1", TikTokViews: 100}}}
	rc := newTestRosterController(svc, newMockCache())

	rr := httptest.NewRecorder()
	rc.GetStats(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"tiktokViews":100`)
}

func TestGetMissingAccounts(t *testing.T) {
	svc := &mockRosterService{athletes: models.Roster{
		{ID: "a1", DisplayName: "Jo Lee", TikTokPostURL: "https://tiktok.com/v/1"},
	}}
	rc := newTestRosterController(svc, newMockCache())

	rr := httptest.NewRecorder()
	rc.GetMissingAccounts(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"missingTiktok":true`)
}

func TestGetCompleteness(t *testing.T) {
	svc := &mockRosterService{athletes: models.Roster{
		{ID: "a1", DisplayName: "Jo Lee"},
	}}
	rc := newTestRosterController(svc, newMockCache())

	rr := httptest.NewRecorder()
	rc.GetCompleteness(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"missing"`)
}

func TestGetAlerts_IncludesActiveLists(t *testing.T) {
	svc := &mockRosterService{alerts: models.AlertState{
		FailedTikTokURLs: []string{"u1", "u2"},
		DismissedAlerts:  []string{"u1"},
	}}
	rc := newTestRosterController(svc, newMockCache())

	rr := httptest.NewRecorder()
	rc.GetAlerts(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"activeTiktok":["u2"]`)
}

func TestDismissAlert(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"u1"}`))
	rr := httptest.NewRecorder()
	rc.DismissAlert(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"u1"}, svc.dismissed)
}

func TestDismissAlert_EmptyURL(t *testing.T) {
	svc := &mockRosterService{}
	rc := newTestRosterController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":""}`))
	rr := httptest.NewRecorder()
	rc.DismissAlert(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.dismissed)
}
