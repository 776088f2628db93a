package store

import (
	"context"
	"errors"
	"time"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// ErrNotFound is returned when the roster document or a snapshot does not
// exist in the remote store.
var ErrNotFound = errors.New("store: not found")

// RosterDocument is the whole-document value at the well-known roster key.
// Writes replace the entire document; there is no field-level merge in the
// store. UpdatedAt is the write timestamp used for foreign-write detection.
type RosterDocument struct {
	Athletes  models.Roster     `json:"athletes"`
	Alerts    models.AlertState `json:"alerts"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// DocumentStore is the remote store boundary for the single roster
// document. Subscribe delivers every write, including the subscriber's own;
// telling them apart is the synchronization controller's job.
type DocumentStore interface {
	Get(ctx context.Context) (*RosterDocument, error)
	Set(ctx context.Context, doc *RosterDocument) error
	Subscribe(ctx context.Context, fn func(doc *RosterDocument)) (func(), error)
}

// SnapshotStore is the append-only version history sub-collection.
type SnapshotStore interface {
	AddSnapshot(ctx context.Context, snap *models.VersionSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]models.SnapshotMeta, error)
	GetSnapshot(ctx context.Context, id string) (*models.VersionSnapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
	SnapshotCount(ctx context.Context) (int64, error)
	OldestSnapshotIDs(ctx context.Context, n int) ([]string, error)
}
