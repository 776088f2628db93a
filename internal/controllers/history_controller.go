package controllers

import (
	"errors"
	"net/http"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/history"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/services"
)

type HistoryController struct {
	logger  providers.Logger
	manager history.ManagerInterface
	service services.RosterServiceInterface
}

func NewHistoryController(logger providers.Logger, manager history.ManagerInterface, service services.RosterServiceInterface) *HistoryController {
	return &HistoryController{logger: logger, manager: manager, service: service}
}

type historyEntry struct {
	models.SnapshotMeta
	Label string `json:"label"`
}

// List returns snapshot metadata only, newest first.
func (hc *HistoryController) List(w http.ResponseWriter, r *http.Request) {
	metas, err := hc.manager.List(r.Context())
	if err != nil {
		hc.logger.Errorf(providers.TypeGet, "History list failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	entries := make([]historyEntry, 0, len(metas))
	for _, meta := range metas {
		entries = append(entries, historyEntry{SnapshotMeta: meta, Label: meta.Source.Label()})
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetOne returns a full snapshot for preview, athlete payload included.
func (hc *HistoryController) GetOne(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	snap, err := hc.manager.GetOne(r.Context(), id)
	if errors.Is(err, history.ErrSnapshotNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		hc.logger.Errorf(providers.TypeGet, "History get %s failed: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type restoreRequest struct {
	ID string `json:"id"`
}

// Restore replaces the local draft with a historical version and marks it
// dirty. A missing snapshot is a 404, never a silently adopted empty roster.
func (hc *HistoryController) Restore(w http.ResponseWriter, r *http.Request) {
	var req restoreRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	summary, err := hc.service.RestoreVersion(r.Context(), req.ID)
	if errors.Is(err, history.ErrSnapshotNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		hc.logger.Errorf(providers.TypePost, "Restore %s failed: %s", req.ID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
