package controllers

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/roster"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/scrape"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/services"
)

type RosterController struct {
	logger  providers.Logger
	service services.RosterServiceInterface
	cache   providers.CacheProviderInterface
}

func NewRosterController(logger providers.Logger, service services.RosterServiceInterface, cache providers.CacheProviderInterface) *RosterController {
	return &RosterController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

// serveFromCacheOrCompute keys read responses on the draft generation, so
// every local mutation invalidates them implicitly.
func (rc *RosterController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	key := fmt.Sprintf("%s:g%d", cacheKey, rc.service.Generation())
	if data, ok := rc.cache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rc.cache.Set(key, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

type rosterResponse struct {
	Athletes models.Roster     `json:"athletes"`
	Alerts   models.AlertState `json:"alerts"`
}

func (rc *RosterController) GetRoster(w http.ResponseWriter, r *http.Request) {
	rc.serveFromCacheOrCompute(w, "roster", func() (any, error) {
		athletes, alerts := rc.service.Roster()
		return rosterResponse{Athletes: athletes, Alerts: alerts}, nil
	})
}

type updateRosterRequest struct {
	Athletes models.Roster `json:"athletes"`
}

// UpdateRoster is the manual-edit path: it replaces the draft and marks it
// dirty, it never pushes.
func (rc *RosterController) UpdateRoster(w http.ResponseWriter, r *http.Request) {
	var req updateRosterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	summary := rc.service.ManualEdit(req.Athletes)
	writeJSON(w, http.StatusOK, summary)
}

type importRequest struct {
	Rows         []map[string]string `json:"rows"`
	CampaignType models.CampaignType `json:"campaignType"`
}

func (rc *RosterController) ImportPerformance(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decodeBody(w, r, &req) {
		return
	}
	campaignType := req.CampaignType
	if campaignType != models.CampaignStory {
		campaignType = models.CampaignVideo
	}
	result, err := rc.service.ImportPerformance(r.Context(), roster.ParseRows(req.Rows), campaignType)
	if err != nil {
		rc.logger.Errorf(providers.TypePost, "Performance import failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (rc *RosterController) ImportContacts(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := rc.service.ImportContacts(r.Context(), roster.ParseRows(req.Rows))
	if err != nil {
		rc.logger.Errorf(providers.TypePost, "Contact import failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type scrapeApplyRequest struct {
	Platform scrape.Platform `json:"platform"`
	Result   scrape.Result   `json:"result"`
}

func (rc *RosterController) ApplyScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeApplyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Platform != scrape.PlatformTikTok && req.Platform != scrape.PlatformInstagram {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	result, err := rc.service.ApplyScrape(r.Context(), &req.Result, req.Platform)
	if err != nil {
		rc.logger.Errorf(providers.TypePost, "Scrape apply failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type dedupeResponse struct {
	Absorbed []string               `json:"absorbed"`
	Summary  services.ChangeSummary `json:"summary"`
}

func (rc *RosterController) Dedupe(w http.ResponseWriter, r *http.Request) {
	absorbed, summary := rc.service.Dedupe()
	writeJSON(w, http.StatusOK, dedupeResponse{Absorbed: absorbed, Summary: summary})
}

type purgeRequest struct {
	Baseline []string `json:"baseline"`
	Confirm  bool     `json:"confirm"`
}

// Purge is irreversible from the roster's point of view, so the request
// must carry an explicit confirmation; the removed set comes back for
// re-import undo.
func (rc *RosterController) Purge(w http.ResponseWriter, r *http.Request) {
	var req purgeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Confirm {
		http.Error(w, "purge requires confirmation", http.StatusPreconditionRequired)
		return
	}
	if len(req.Baseline) == 0 {
		http.Error(w, "empty baseline would remove every athlete", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, rc.service.PurgeToBaseline(req.Baseline))
}

type mockFillResponse struct {
	Filled  int                    `json:"filled"`
	Summary services.ChangeSummary `json:"summary"`
}

func (rc *RosterController) MockFill(w http.ResponseWriter, r *http.Request) {
	filled, summary := rc.service.FillMockData()
	writeJSON(w, http.StatusOK, mockFillResponse{Filled: filled, Summary: summary})
}

func (rc *RosterController) GetStats(w http.ResponseWriter, r *http.Request) {
	rc.serveFromCacheOrCompute(w, "stats", func() (any, error) {
		return rc.service.Stats(), nil
	})
}

func (rc *RosterController) GetMissingAccounts(w http.ResponseWriter, r *http.Request) {
	rc.serveFromCacheOrCompute(w, "missing-accounts", func() (any, error) {
		return rc.service.MissingAccounts(), nil
	})
}

func (rc *RosterController) GetCompleteness(w http.ResponseWriter, r *http.Request) {
	rc.serveFromCacheOrCompute(w, "completeness", func() (any, error) {
		return rc.service.Completeness(), nil
	})
}

func (rc *RosterController) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := rc.service.Alerts()
	writeJSON(w, http.StatusOK, map[string]any{
		"failedTiktokUrls":    alerts.FailedTikTokURLs,
		"failedInstagramUrls": alerts.FailedInstagramURLs,
		"activeTiktok":        alerts.ActiveTikTok(),
		"activeInstagram":     alerts.ActiveInstagram(),
		"dismissed":           alerts.DismissedAlerts,
	})
}

type dismissRequest struct {
	URL string `json:"url"`
}

func (rc *RosterController) DismissAlert(w http.ResponseWriter, r *http.Request) {
	var req dismissRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rc.service.DismissAlert(req.URL)
	w.WriteHeader(http.StatusNoContent)
}
