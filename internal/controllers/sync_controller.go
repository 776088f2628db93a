package controllers

import (
	"net/http"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/services"
)

type SyncController struct {
	logger  providers.Logger
	service services.RosterServiceInterface
}

func NewSyncController(logger providers.Logger, service services.RosterServiceInterface) *SyncController {
	return &SyncController{logger: logger, service: service}
}

// Push publishes the local draft. Failure leaves the draft dirty and
// untouched; the operator retries.
func (sc *SyncController) Push(w http.ResponseWriter, r *http.Request) {
	meta, err := sc.service.Push(r.Context())
	if err != nil {
		sc.logger.Errorf(providers.TypeSync, "Push failed: %s", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "push failed, draft kept locally; retry",
		})
		return
	}
	if meta == nil {
		// the push committed but the snapshot write did not
		writeJSON(w, http.StatusOK, map[string]string{
			"warning": "pushed, history entry not recorded",
		})
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// Refresh discards the local draft in favor of the remote roster. This is
// the explicit resolution of a remote-ahead conflict.
func (sc *SyncController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := sc.service.RefreshFromRemote(r.Context()); err != nil {
		sc.logger.Errorf(providers.TypeSync, "Refresh failed: %s", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "refresh failed"})
		return
	}
	writeJSON(w, http.StatusOK, sc.service.Status())
}

func (sc *SyncController) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.service.Status())
}
