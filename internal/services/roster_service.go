package services

import (
	"context"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/report"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/roster"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/scrape"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/syncer"
)

// ChangeSummary is attached to every mutating response so the dashboard can
// tell the operator what the operation did to the campaign totals.
type ChangeSummary struct {
	Changes []report.StatChange  `json:"changes"`
	Stats   report.CampaignStats `json:"stats"`
}

// ImportResult is the response of a high-priority import.
type ImportResult struct {
	Outcome  roster.ImportOutcome `json:"outcome"`
	Snapshot *models.SnapshotMeta `json:"snapshot,omitempty"`
	Summary  ChangeSummary        `json:"summary"`
}

// FillResult is the response of a low-priority import.
type FillResult struct {
	Report   roster.FillReport    `json:"report"`
	Snapshot *models.SnapshotMeta `json:"snapshot,omitempty"`
	Summary  ChangeSummary        `json:"summary"`
}

// ScrapeResult is the response of applying a provider batch.
type ScrapeResult struct {
	Updated    int                  `json:"updated"`
	FailedURLs []string             `json:"failedUrls"`
	Snapshot   *models.SnapshotMeta `json:"snapshot,omitempty"`
	Summary    ChangeSummary        `json:"summary"`
}

// PurgeResult returns both partitions so the caller can undo a purge by
// re-importing the removed records.
type PurgeResult struct {
	Kept    models.Roster `json:"kept"`
	Removed models.Roster `json:"removed"`
	Summary ChangeSummary `json:"summary"`
}

type RosterServiceInterface interface {
	Roster() (models.Roster, models.AlertState)
	Generation() int64
	Stats() report.CampaignStats
	Status() syncer.Status

	ManualEdit(athletes models.Roster) ChangeSummary
	ImportPerformance(ctx context.Context, rows []roster.ImportRow, campaignType models.CampaignType) (*ImportResult, error)
	ImportContacts(ctx context.Context, rows []roster.ImportRow) (*FillResult, error)
	ApplyScrape(ctx context.Context, res *scrape.Result, platform scrape.Platform) (*ScrapeResult, error)
	Dedupe() ([]string, ChangeSummary)
	PurgeToBaseline(baselineNames []string) *PurgeResult
	FillMockData() (int, ChangeSummary)
	Push(ctx context.Context) (*models.SnapshotMeta, error)
	RefreshFromRemote(ctx context.Context) error
	RestoreVersion(ctx context.Context, id string) (ChangeSummary, error)
	DismissAlert(url string)
	Alerts() models.AlertState
	MissingAccounts() []roster.MissingAccount
	Completeness() []roster.CompletenessEntry
}

// RosterService applies merge engine operations to the controller's draft.
// Imports and scrape refreshes auto-push; manual edits, mock fills, dedups
// and purges accumulate in the dirty draft until an explicit push.
type RosterService struct {
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	controller *syncer.Controller
	estimator  *roster.Estimator
}

func NewRosterService(logger providers.Logger, metrics providers.MetricsProviderInterface, controller *syncer.Controller, estimator *roster.Estimator) RosterServiceInterface {
	return &RosterService{
		logger:     logger,
		metrics:    metrics,
		controller: controller,
		estimator:  estimator,
	}
}

func (s *RosterService) Roster() (models.Roster, models.AlertState) {
	return s.controller.Draft()
}

func (s *RosterService) Generation() int64 {
	return s.controller.Generation()
}

func (s *RosterService) Stats() report.CampaignStats {
	athletes, _ := s.controller.Draft()
	return report.ComputeStats(athletes)
}

func (s *RosterService) Status() syncer.Status {
	return s.controller.Status()
}

func (s *RosterService) summarize(before report.CampaignStats, after models.Roster) ChangeSummary {
	stats := report.ComputeStats(after)
	return ChangeSummary{Changes: report.Diff(before, stats), Stats: stats}
}

func (s *RosterService) ManualEdit(athletes models.Roster) ChangeSummary {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)
	s.controller.LocalMutate(athletes, alerts)
	return s.summarize(before, athletes)
}

func (s *RosterService) ImportPerformance(ctx context.Context, rows []roster.ImportRow, campaignType models.CampaignType) (*ImportResult, error) {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)

	merged, outcome := roster.HighPriorityImport(current, rows, campaignType)
	s.metrics.IncImportRowsSkipped(outcome.RowsSkipped)
	s.controller.LocalMutate(merged, alerts)
	s.logger.Infof(providers.TypeApp, "Performance import: %d rows, %d matched, %d added, %d skipped",
		outcome.RowsProcessed, outcome.Matched, outcome.Added, outcome.RowsSkipped)

	// triggering the import is the operator's approval to publish
	snap, err := s.controller.Push(ctx, models.SourcePerformanceImport)
	if err != nil {
		s.logger.Warnf(providers.TypeSync, "Auto-push after import failed: %s", err)
	}
	return &ImportResult{Outcome: outcome, Snapshot: snap, Summary: s.summarize(before, merged)}, nil
}

func (s *RosterService) ImportContacts(ctx context.Context, rows []roster.ImportRow) (*FillResult, error) {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)

	merged, rep := roster.LowPriorityImport(current, rows)
	s.metrics.IncImportRowsSkipped(rep.RowsSkipped)
	s.controller.LocalMutate(merged, alerts)
	s.logger.Infof(providers.TypeApp, "Contact import: %d rows, %d athletes, %d fields filled",
		rep.TotalRowsProcessed, rep.AthletesMatched, rep.FieldsUpdated)

	snap, err := s.controller.Push(ctx, models.SourceContactImport)
	if err != nil {
		s.logger.Warnf(providers.TypeSync, "Auto-push after import failed: %s", err)
	}
	return &FillResult{Report: rep, Snapshot: snap, Summary: s.summarize(before, merged)}, nil
}

func (s *RosterService) ApplyScrape(ctx context.Context, res *scrape.Result, platform scrape.Platform) (*ScrapeResult, error) {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)

	merged, updated := scrape.Apply(current, res, platform)
	if platform == scrape.PlatformTikTok {
		alerts.RecordTikTokFailures(res.FailedURLs)
	} else {
		alerts.RecordInstagramFailures(res.FailedURLs)
	}
	s.controller.LocalMutate(merged, alerts)
	s.logger.Infof(providers.TypeApp, "%s refresh: %d updated, %d failed URLs", platform, updated, len(res.FailedURLs))

	source := models.SourceTikTokRefresh
	if platform == scrape.PlatformInstagram {
		source = models.SourceInstagramRefresh
	}
	snap, err := s.controller.Push(ctx, source)
	if err != nil {
		s.logger.Warnf(providers.TypeSync, "Auto-push after refresh failed: %s", err)
	}
	return &ScrapeResult{Updated: updated, FailedURLs: res.FailedURLs, Snapshot: snap, Summary: s.summarize(before, merged)}, nil
}

func (s *RosterService) Dedupe() ([]string, ChangeSummary) {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)

	merged, absorbed := roster.Deduplicate(current)
	s.controller.LocalMutate(merged, alerts)
	for _, name := range absorbed {
		s.logger.Infof(providers.TypeApp, "Dedupe absorbed %q", name)
	}
	return absorbed, s.summarize(before, merged)
}

// PurgeToBaseline assumes the operator confirmation already happened at the
// HTTP boundary; the removed partition comes back so the caller can undo.
func (s *RosterService) PurgeToBaseline(baselineNames []string) *PurgeResult {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)

	kept, removed := roster.FilterToBaseline(current, baselineNames)
	s.controller.LocalMutate(kept, alerts)
	s.logger.Warnf(providers.TypeApp, "Baseline purge: kept %d, removed %d", len(kept), len(removed))
	return &PurgeResult{Kept: kept, Removed: removed, Summary: s.summarize(before, kept)}
}

func (s *RosterService) FillMockData() (int, ChangeSummary) {
	current, alerts := s.controller.Draft()
	before := report.ComputeStats(current)

	merged, filled := s.estimator.FillMissingStoryMetrics(current)
	s.controller.LocalMutate(merged, alerts)
	s.logger.Infof(providers.TypeApp, "Mock fill: %d records estimated", filled)
	return filled, s.summarize(before, merged)
}

func (s *RosterService) Push(ctx context.Context) (*models.SnapshotMeta, error) {
	return s.controller.Push(ctx, models.SourceManualSave)
}

func (s *RosterService) RefreshFromRemote(ctx context.Context) error {
	return s.controller.RefreshFromRemote(ctx)
}

// RestoreVersion replaces the local draft with a historical roster and
// marks it dirty. Publishing the rollback still takes an explicit push.
func (s *RosterService) RestoreVersion(ctx context.Context, id string) (ChangeSummary, error) {
	current, _ := s.controller.Draft()
	before := report.ComputeStats(current)

	athletes, _, err := s.controller.RestoreDraft(ctx, id)
	if err != nil {
		return ChangeSummary{}, err
	}
	return s.summarize(before, athletes), nil
}

func (s *RosterService) DismissAlert(url string) {
	athletes, alerts := s.controller.Draft()
	alerts.Dismiss(url)
	s.controller.LocalMutate(athletes, alerts)
}

func (s *RosterService) Alerts() models.AlertState {
	_, alerts := s.controller.Draft()
	return alerts
}

func (s *RosterService) MissingAccounts() []roster.MissingAccount {
	athletes, _ := s.controller.Draft()
	return roster.MissingAccounts(athletes)
}

func (s *RosterService) Completeness() []roster.CompletenessEntry {
	athletes, _ := s.controller.Draft()
	return roster.CompletenessReport(athletes)
}
