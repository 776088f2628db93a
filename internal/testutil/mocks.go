package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/history"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/store"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were recorded at the given level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCompressor implements store.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	Pushes           map[string]int
	PushFailures     int
	RowsSkipped      int
	RemoteAhead      int
	RosterSize       int
	DraftDirty       bool
	PushObservations int
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(endpoint string, duration time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncPushes(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Pushes == nil {
		m.Pushes = make(map[string]int)
	}
	m.Pushes[source]++
}

func (m *MockMetrics) IncPushFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PushFailures++
}

func (m *MockMetrics) IncImportRowsSkipped(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsSkipped += count
}

func (m *MockMetrics) IncRemoteAhead() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoteAhead++
}

func (m *MockMetrics) SetRosterSize(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RosterSize = count
}

func (m *MockMetrics) SetDraftDirty(dirty bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DraftDirty = dirty
}

func (m *MockMetrics) ObservePushDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PushObservations++
}

// MockDocumentStore implements store.DocumentStore in memory with
// injectable failures. Subscribe hands back a trigger usable from tests.
// EchoOnSet mirrors the real store, which publishes the change
// notification from inside Set.
type MockDocumentStore struct {
	mu         sync.Mutex
	Doc        *store.RosterDocument
	GetErr     error
	SetErr     error
	SetCalls   int
	EchoOnSet  bool
	subscriber func(doc *store.RosterDocument)
}

func (m *MockDocumentStore) Get(ctx context.Context) (*store.RosterDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Doc == nil {
		return nil, store.ErrNotFound
	}
	doc := *m.Doc
	doc.Athletes = m.Doc.Athletes.Clone()
	return &doc, nil
}

func (m *MockDocumentStore) Set(ctx context.Context, doc *store.RosterDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	cp := *doc
	cp.Athletes = doc.Athletes.Clone()
	m.Doc = &cp
	fn := m.subscriber
	if m.EchoOnSet && fn != nil {
		m.mu.Unlock()
		fn(&cp)
		m.mu.Lock()
	}
	return nil
}

func (m *MockDocumentStore) Subscribe(ctx context.Context, fn func(doc *store.RosterDocument)) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriber = fn
	return func() {}, nil
}

// Notify simulates a change notification from another device.
func (m *MockDocumentStore) Notify(doc *store.RosterDocument) {
	m.mu.Lock()
	fn := m.subscriber
	m.mu.Unlock()
	if fn != nil {
		fn(doc)
	}
}

// MockSnapshotStore implements store.SnapshotStore in memory, ordered
// oldest first like the real zset index.
type MockSnapshotStore struct {
	mu        sync.Mutex
	Snapshots []*models.VersionSnapshot
	AddErr    error
	DeleteErr error
}

func (m *MockSnapshotStore) AddSnapshot(ctx context.Context, snap *models.VersionSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddErr != nil {
		return m.AddErr
	}
	cp := *snap
	cp.Athletes = snap.Athletes.Clone()
	m.Snapshots = append(m.Snapshots, &cp)
	return nil
}

func (m *MockSnapshotStore) ListSnapshots(ctx context.Context, limit int) ([]models.SnapshotMeta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	metas := make([]models.SnapshotMeta, 0, len(m.Snapshots))
	for i := len(m.Snapshots) - 1; i >= 0; i-- {
		metas = append(metas, m.Snapshots[i].SnapshotMeta)
		if limit > 0 && len(metas) >= limit {
			break
		}
	}
	return metas, nil
}

func (m *MockSnapshotStore) GetSnapshot(ctx context.Context, id string) (*models.VersionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.Snapshots {
		if s.ID == id {
			cp := *s
			cp.Athletes = s.Athletes.Clone()
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MockSnapshotStore) DeleteSnapshot(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, s := range m.Snapshots {
		if s.ID == id {
			m.Snapshots = append(m.Snapshots[:i], m.Snapshots[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *MockSnapshotStore) SnapshotCount(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Snapshots)), nil
}

func (m *MockSnapshotStore) OldestSnapshotIDs(ctx context.Context, n int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, n)
	for i := 0; i < len(m.Snapshots) && i < n; i++ {
		ids = append(ids, m.Snapshots[i].ID)
	}
	return ids, nil
}

// MockHistory implements history.ManagerInterface without a backing store.
type MockHistory struct {
	mu            sync.Mutex
	SnapshotErr   error
	RestoreErr    error
	Metas         []models.SnapshotMeta
	Restored      *models.VersionSnapshot
	SnapshotCalls []models.SourceTag
}

func (m *MockHistory) Snapshot(ctx context.Context, athletes models.Roster, alerts models.AlertState, source models.SourceTag) (*models.SnapshotMeta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotCalls = append(m.SnapshotCalls, source)
	if m.SnapshotErr != nil {
		return nil, m.SnapshotErr
	}
	meta := models.SnapshotMeta{ID: "snap-mock", Source: source, AthleteCount: len(athletes)}
	m.Metas = append([]models.SnapshotMeta{meta}, m.Metas...)
	return &meta, nil
}

func (m *MockHistory) List(ctx context.Context) ([]models.SnapshotMeta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Metas, nil
}

func (m *MockHistory) GetOne(ctx context.Context, id string) (*models.VersionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Restored != nil && m.Restored.ID == id {
		return m.Restored, nil
	}
	return nil, history.ErrSnapshotNotFound
}

func (m *MockHistory) Restore(ctx context.Context, id string) (models.Roster, models.AlertState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RestoreErr != nil {
		return nil, models.AlertState{}, m.RestoreErr
	}
	if m.Restored == nil || m.Restored.ID != id {
		return nil, models.AlertState{}, history.ErrSnapshotNotFound
	}
	return m.Restored.Athletes.Clone(), m.Restored.Alerts.Clone(), nil
}
