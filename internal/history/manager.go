package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/report"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/store"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

// ErrSnapshotNotFound distinguishes "no such version" from "restored an
// empty roster"; the caller must never silently adopt an empty roster on a
// failed restore.
var ErrSnapshotNotFound = errors.New("history: snapshot not found")

type ManagerInterface interface {
	Snapshot(ctx context.Context, athletes models.Roster, alerts models.AlertState, source models.SourceTag) (*models.SnapshotMeta, error)
	List(ctx context.Context) ([]models.SnapshotMeta, error)
	GetOne(ctx context.Context, id string) (*models.VersionSnapshot, error)
	Restore(ctx context.Context, id string) (models.Roster, models.AlertState, error)
}

// Manager owns the append-only, capped version history. Snapshots are
// created on every successful push and never mutated; retention trims the
// oldest beyond the cap.
type Manager struct {
	snapshots store.SnapshotStore
	cap       int
	logger    providers.Logger
}

func NewManager(conf *structures.Config, snapshots store.SnapshotStore, logger providers.Logger) ManagerInterface {
	return &Manager{
		snapshots: snapshots,
		cap:       conf.History.Cap,
		logger:    logger,
	}
}

// Snapshot appends a new version with precomputed aggregate stats, then
// enforces the retention cap.
func (m *Manager) Snapshot(ctx context.Context, athletes models.Roster, alerts models.AlertState, source models.SourceTag) (*models.SnapshotMeta, error) {
	if !source.Valid() {
		return nil, fmt.Errorf("history: unknown source tag %q", source)
	}

	stats := report.ComputeStats(athletes)
	snap := &models.VersionSnapshot{
		SnapshotMeta: models.SnapshotMeta{
			ID:           uuid.NewString(),
			Timestamp:    time.Now().UTC(),
			Source:       source,
			AthleteCount: len(athletes),
			TotalViews:   stats.TotalViews,
			TikTokViews:  stats.TikTokViews,
			IGReelViews:  stats.IGReelViews,
		},
		Athletes: athletes.Clone(),
		Alerts:   alerts.Clone(),
	}

	if err := m.snapshots.AddSnapshot(ctx, snap); err != nil {
		return nil, err
	}
	m.trim(ctx)
	return &snap.SnapshotMeta, nil
}

// trim removes the oldest snapshots beyond the cap. Trim failures are
// logged, not surfaced, since the snapshot itself was already stored.
func (m *Manager) trim(ctx context.Context) {
	count, err := m.snapshots.SnapshotCount(ctx)
	if err != nil {
		m.logger.Warnf(providers.TypeSync, "history trim count: %s", err)
		return
	}
	excess := int(count) - m.cap
	if excess <= 0 {
		return
	}
	ids, err := m.snapshots.OldestSnapshotIDs(ctx, excess)
	if err != nil {
		m.logger.Warnf(providers.TypeSync, "history trim scan: %s", err)
		return
	}
	for _, id := range ids {
		if err := m.snapshots.DeleteSnapshot(ctx, id); err != nil {
			m.logger.Warnf(providers.TypeSync, "history trim delete %s: %s", id, err)
		}
	}
}

// List returns metadata only, newest first.
func (m *Manager) List(ctx context.Context) ([]models.SnapshotMeta, error) {
	return m.snapshots.ListSnapshots(ctx, m.cap)
}

// GetOne returns the full snapshot including the athlete payload.
func (m *Manager) GetOne(ctx context.Context, id string) (*models.VersionSnapshot, error) {
	snap, err := m.snapshots.GetSnapshot(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore returns the snapshot's roster for adoption as the local draft.
// It does not push and does not create a new snapshot: previewing an old
// version stays distinguishable from committing to a rollback.
func (m *Manager) Restore(ctx context.Context, id string) (models.Roster, models.AlertState, error) {
	snap, err := m.GetOne(ctx, id)
	if err != nil {
		return nil, models.AlertState{}, err
	}
	return snap.Athletes.Clone(), snap.Alerts.Clone(), nil
}
