package syncer

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"go.uber.org/atomic"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/history"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/store"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

const placeholderCount = 12

// RemoteChangeCallback receives the foreign roster snapshot and its write
// timestamp whenever another operator's push is observed.
type RemoteChangeCallback func(athletes models.Roster, updatedAt time.Time)

// Controller owns the local draft roster and is the single writer to it.
// Merges happen on copies; a concurrent read always sees a consistent
// pre-merge or post-merge roster, never a partial one. The controller never
// pushes on its own: Push is an explicit operation, and the two auto-push
// flows (post-import, post-scrape) live above it in the service layer.
type Controller struct {
	conf    *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	store   store.DocumentStore
	history history.ManagerInterface
	cache   *store.DraftCache

	mu           stdsync.RWMutex
	draft        models.Roster
	alerts       models.AlertState
	lastRemoteAt time.Time

	state       *atomic.Int32
	dirty       *atomic.Bool
	cloudSynced *atomic.Bool
	remoteAhead *atomic.Bool
	generation  *atomic.Int64

	cbMu        stdsync.Mutex
	callbacks   []RemoteChangeCallback
	unsubscribe func()
}

func NewController(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, documents store.DocumentStore, versions history.ManagerInterface, cache *store.DraftCache) *Controller {
	return &Controller{
		conf:        conf,
		logger:      logger,
		metrics:     metrics,
		store:       documents,
		history:     versions,
		cache:       cache,
		state:       atomic.NewInt32(int32(StateUninitialized)),
		dirty:       atomic.NewBool(false),
		cloudSynced: atomic.NewBool(false),
		remoteAhead: atomic.NewBool(false),
		generation:  atomic.NewInt64(0),
	}
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
}

func (c *Controller) State() State {
	return State(c.state.Load())
}

// Load adopts the remote roster when it holds at least one real (non
// placeholder) name, otherwise falls back to the device-local draft cache,
// and as a last resort to a placeholder roster. Load fails open: a remote
// read error degrades to the cache, never to a crash.
func (c *Controller) Load(ctx context.Context) {
	c.setState(StateLoading)

	doc, err := c.store.Get(ctx)
	switch {
	case err == nil && doc.Athletes.HasRealNames():
		c.adopt(doc.Athletes, doc.Alerts, doc.UpdatedAt, true)
		c.logger.Infof(providers.TypeSync, "Adopted remote roster: %d athletes", len(doc.Athletes))
		return
	case err == nil:
		c.logger.Infof(providers.TypeSync, "Remote roster empty, falling back to local cache")
	case errors.Is(err, store.ErrNotFound):
		c.logger.Infof(providers.TypeSync, "No remote roster yet, falling back to local cache")
	default:
		c.logger.Warnf(providers.TypeSync, "Remote load failed, falling back to local cache: %s", err)
	}

	athletes, alerts, cacheErr := c.cache.Load()
	if cacheErr != nil {
		c.logger.Warnf(providers.TypeSync, "Local cache load failed: %s", cacheErr)
	}
	if len(athletes) > 0 {
		c.adopt(athletes, *alerts, time.Time{}, false)
		c.logger.Infof(providers.TypeSync, "Adopted cached draft: %d athletes", len(athletes))
		return
	}

	c.adopt(models.PlaceholderRoster(placeholderCount, models.CampaignVideo), models.AlertState{}, time.Time{}, false)
	c.logger.Infof(providers.TypeSync, "Starting from placeholder roster")
}

func (c *Controller) adopt(athletes models.Roster, alerts models.AlertState, remoteAt time.Time, fromRemote bool) {
	c.mu.Lock()
	c.draft = athletes.Clone()
	c.alerts = alerts.Clone()
	c.lastRemoteAt = remoteAt
	c.mu.Unlock()

	c.dirty.Store(false)
	c.cloudSynced.Store(fromRemote)
	c.remoteAhead.Store(false)
	c.setState(StateSynced)
	c.generation.Inc()
	c.metrics.SetRosterSize(len(athletes))
	c.metrics.SetDraftDirty(false)
}

// Draft returns a copy of the current draft and alert state.
func (c *Controller) Draft() (models.Roster, models.AlertState) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draft.Clone(), c.alerts.Clone()
}

// Generation increments on every draft replacement; read caches key on it.
func (c *Controller) Generation() int64 {
	return c.generation.Load()
}

// LocalMutate replaces the in-memory draft, persists the device-local cache
// copy best-effort, and marks the draft dirty. It never touches the remote
// store.
func (c *Controller) LocalMutate(athletes models.Roster, alerts models.AlertState) {
	c.mu.Lock()
	c.draft = athletes.Clone()
	c.alerts = alerts.Clone()
	c.mu.Unlock()

	c.dirty.Store(true)
	c.setState(StateDraftDirty)
	c.generation.Inc()
	c.metrics.SetRosterSize(len(athletes))
	c.metrics.SetDraftDirty(true)

	if err := c.cache.Save(athletes, alerts); err != nil {
		// cache failure is non-fatal, the draft lives in memory
		c.logger.Warnf(providers.TypeSync, "Draft cache write failed: %s", err)
	}
}

// Push writes the full draft to the remote store under a fresh timestamp,
// then snapshots the pushed state into version history. On write failure the
// draft stays dirty and untouched; the underlying store write is atomic for
// the whole document.
func (c *Controller) Push(ctx context.Context, source models.SourceTag) (*models.SnapshotMeta, error) {
	if !source.Valid() {
		return nil, fmt.Errorf("push: unknown source tag %q", source)
	}

	c.mu.RLock()
	athletes := c.draft.Clone()
	alerts := c.alerts.Clone()
	c.mu.RUnlock()

	c.setState(StatePushing)
	start := time.Now()
	pushedAt := start.UTC()

	// record our own write timestamp first; the store may deliver the
	// change notification from inside Set, and the listener must already
	// recognize the echo by then
	c.mu.Lock()
	prevRemoteAt := c.lastRemoteAt
	c.lastRemoteAt = pushedAt
	c.mu.Unlock()

	err := c.store.Set(ctx, &store.RosterDocument{
		Athletes:  athletes,
		Alerts:    alerts,
		UpdatedAt: pushedAt,
	})
	if err != nil {
		c.mu.Lock()
		c.lastRemoteAt = prevRemoteAt
		c.mu.Unlock()
		c.setState(StateDraftDirty)
		c.metrics.IncPushFailures()
		return nil, fmt.Errorf("push roster: %w", err)
	}

	c.dirty.Store(false)
	c.cloudSynced.Store(true)
	c.setState(StateSynced)
	c.metrics.IncPushes(string(source))
	c.metrics.SetDraftDirty(false)
	c.metrics.ObservePushDuration(time.Since(start))

	meta, err := c.history.Snapshot(ctx, athletes, alerts, source)
	if err != nil {
		// the push itself committed and the draft is clean; a missed
		// snapshot only costs a history entry, so the push still succeeds
		c.logger.Errorf(providers.TypeSync, "Snapshot after push failed: %s", err)
		return nil, nil
	}
	c.logger.Infof(providers.TypeSync, "Pushed %d athletes (%s), snapshot %s", len(athletes), source, meta.ID)
	return meta, nil
}

// OnRemoteChange registers a callback invoked for every observed foreign
// write. Safe to call before or after Start.
func (c *Controller) OnRemoteChange(cb RemoteChangeCallback) {
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.callbacks = append(c.callbacks, cb)
}

// Start subscribes to remote change notifications. The handler compares the
// incoming timestamp against the last write this controller produced, so the
// operator's own push never raises the conflict banner.
func (c *Controller) Start(ctx context.Context) error {
	unsubscribe, err := c.store.Subscribe(ctx, c.handleRemoteDocument)
	if err != nil {
		return fmt.Errorf("subscribe remote changes: %w", err)
	}
	c.cbMu.Lock()
	c.unsubscribe = unsubscribe
	c.cbMu.Unlock()
	return nil
}

func (c *Controller) handleRemoteDocument(doc *store.RosterDocument) {
	c.mu.RLock()
	own := doc.UpdatedAt.Equal(c.lastRemoteAt)
	c.mu.RUnlock()
	if own {
		return
	}

	c.remoteAhead.Store(true)
	c.metrics.IncRemoteAhead()
	c.logger.Infof(providers.TypeSync, "Remote roster changed elsewhere at %s", doc.UpdatedAt.Format(time.RFC3339))

	c.cbMu.Lock()
	callbacks := make([]RemoteChangeCallback, len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.cbMu.Unlock()
	for _, cb := range callbacks {
		cb(doc.Athletes.Clone(), doc.UpdatedAt)
	}
}

// CheckRemote is the poll fallback behind the pub/sub listener; it funnels
// into the same timestamp comparison.
func (c *Controller) CheckRemote(ctx context.Context) {
	if c.State() == StatePushing {
		// mid-push the remote document is about to change under us;
		// the next poll sees the settled timestamp
		return
	}
	doc, err := c.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.logger.Debugf(providers.TypeSync, "Remote poll failed: %s", err)
		}
		return
	}
	c.mu.RLock()
	ahead := !doc.UpdatedAt.IsZero() && !doc.UpdatedAt.Equal(c.lastRemoteAt)
	c.mu.RUnlock()
	if ahead && !c.remoteAhead.Load() {
		c.handleRemoteDocument(doc)
	}
}

// RefreshFromRemote discards the local draft in favor of the remote roster.
// This is the explicit conflict resolution: last writer wins at document
// granularity, there is no field-level merge.
func (c *Controller) RefreshFromRemote(ctx context.Context) error {
	doc, err := c.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("refresh from remote: %w", err)
	}
	c.adopt(doc.Athletes, doc.Alerts, doc.UpdatedAt, true)
	if err := c.cache.Save(doc.Athletes, doc.Alerts); err != nil {
		c.logger.Warnf(providers.TypeSync, "Draft cache write failed: %s", err)
	}
	c.logger.Infof(providers.TypeSync, "Refreshed from remote: %d athletes", len(doc.Athletes))
	return nil
}

// RestoreDraft replaces the local draft with a historical snapshot's roster
// and marks it dirty. Restoring never pushes and never snapshots: committing
// to the rollback still takes an explicit push.
func (c *Controller) RestoreDraft(ctx context.Context, id string) (models.Roster, models.AlertState, error) {
	athletes, alerts, err := c.history.Restore(ctx, id)
	if err != nil {
		return nil, models.AlertState{}, err
	}
	c.LocalMutate(athletes, alerts)
	c.logger.Infof(providers.TypeSync, "Restored snapshot %s into draft (%d athletes)", id, len(athletes))
	return athletes, alerts, nil
}

// FlushDraft persists the current draft to the local cache file.
func (c *Controller) FlushDraft() error {
	c.mu.RLock()
	athletes := c.draft.Clone()
	alerts := c.alerts.Clone()
	c.mu.RUnlock()
	if athletes == nil {
		return nil
	}
	return c.cache.Save(athletes, alerts)
}

// Stop tears down the remote listener.
func (c *Controller) Stop() {
	c.cbMu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.cbMu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Controller) Status() Status {
	c.mu.RLock()
	count := len(c.draft)
	lastRemote := c.lastRemoteAt
	c.mu.RUnlock()
	return Status{
		State:        c.State().String(),
		Dirty:        c.dirty.Load(),
		CloudSynced:  c.cloudSynced.Load(),
		RemoteAhead:  c.remoteAhead.Load(),
		AthleteCount: count,
		LastRemoteAt: lastRemote,
	}
}
