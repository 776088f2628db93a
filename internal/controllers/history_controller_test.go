package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/history"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/testutil"
)

func newTestHistoryController(h *testutil.MockHistory, svc *mockRosterService) *HistoryController {
	return NewHistoryController(&mockLogger{}, h, svc)
}

func TestHistoryList_AddsLabels(t *testing.T) {
	h := &testutil.MockHistory{Metas: []models.SnapshotMeta{
		{ID: "s2", Source: models.SourcePerformanceImport, Timestamp: time.Now()},
		{ID: "s1", Source: models.SourceManualSave},
	}}
	hc := newTestHistoryController(h, &mockRosterService{})

	rr := httptest.NewRecorder()
	hc.List(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"label":"Performance import"`)
	assert.Contains(t, rr.Body.String(), `"label":"Manual save"`)
}

func TestHistoryGetOne_Found(t *testing.T) {
	h := &testutil.MockHistory{Restored: &models.VersionSnapshot{
		SnapshotMeta: models.SnapshotMeta{ID: "s1"},
		Athletes:     models.Roster{{ID: "a1", DisplayName: "Jo Lee"}},
	}}
	hc := newTestHistoryController(h, &mockRosterService{})

	rr := httptest.NewRecorder()
	hc.GetOne(rr, httptest.NewRequest(http.MethodGet, "/?id=s1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Jo Lee")
}

func TestHistoryGetOne_NotFound(t *testing.T) {
	hc := newTestHistoryController(&testutil.MockHistory{}, &mockRosterService{})

	rr := httptest.NewRecorder()
	hc.GetOne(rr, httptest.NewRequest(http.MethodGet, "/?id=missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHistoryGetOne_MissingID(t *testing.T) {
	hc := newTestHistoryController(&testutil.MockHistory{}, &mockRosterService{})

	rr := httptest.NewRecorder()
	hc.GetOne(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHistoryRestore(t *testing.T) {
	svc := &mockRosterService{}
	hc := newTestHistoryController(&testutil.MockHistory{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"s1"}`))
	rr := httptest.NewRecorder()
	hc.Restore(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "s1", svc.restoreID)
}

func TestHistoryRestore_NotFound(t *testing.T) {
	svc := &mockRosterService{restoreErr: history.ErrSnapshotNotFound}
	hc := newTestHistoryController(&testutil.MockHistory{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"missing"}`))
	rr := httptest.NewRecorder()
	hc.Restore(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHistoryRestore_EmptyID(t *testing.T) {
	hc := newTestHistoryController(&testutil.MockHistory{}, &mockRosterService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":""}`))
	rr := httptest.NewRecorder()
	hc.Restore(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
