package store

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

// --- local mocks, kept here so store tests don't depend on testutil ---

type testCompressor struct{}

func (testCompressor) Compress(val []byte) ([]byte, error)   { return val, nil }
func (testCompressor) Decompress(val []byte) ([]byte, error) { return val, nil }

type testLogger struct{}

func (testLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (testLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (testLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (testLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (testLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (testLogger) Close()                                                  {}

func newTestDraftCache(t *testing.T) *DraftCache {
	t.Helper()
	conf := &structures.Config{}
	conf.Sync.DraftCachePath = filepath.Join(t.TempDir(), "draft.bin")
	return NewDraftCache(conf, testCompressor{}, testLogger{})
}

func TestDraftCache_Roundtrip(t *testing.T) {
	c := newTestDraftCache(t)

	athletes := models.Roster{{ID: "a1", DisplayName: "Jo Lee", TikTokViews: 100}}
	alerts := models.AlertState{FailedTikTokURLs: []string{"u1"}}
	require.NoError(t, c.Save(athletes, alerts))

	gotAthletes, gotAlerts, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, athletes, gotAthletes)
	require.NotNil(t, gotAlerts)
	assert.Equal(t, []string{"u1"}, gotAlerts.FailedTikTokURLs)
}

func TestDraftCache_LoadMissingFile(t *testing.T) {
	c := newTestDraftCache(t)

	athletes, alerts, err := c.Load()
	assert.NoError(t, err)
	assert.Nil(t, athletes)
	assert.Nil(t, alerts)
}

func TestDraftCache_LoadLegacyBareArray(t *testing.T) {
	c := newTestDraftCache(t)

	legacy := models.Roster{{ID: "a1", DisplayName: "Jo Lee"}}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(c.path, raw, 0644))

	athletes, alerts, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, legacy, athletes)
	require.NotNil(t, alerts)
	assert.Empty(t, alerts.FailedTikTokURLs)
}

func TestDraftCache_LoadCorruptedFile(t *testing.T) {
	c := newTestDraftCache(t)
	require.NoError(t, os.WriteFile(c.path, []byte("not json"), 0644))

	_, _, err := c.Load()
	assert.Error(t, err)
}

func TestDraftCache_SaveOverwrites(t *testing.T) {
	c := newTestDraftCache(t)

	require.NoError(t, c.Save(models.Roster{{ID: "a1"}}, models.AlertState{}))
	require.NoError(t, c.Save(models.Roster{{ID: "a2"}}, models.AlertState{}))

	athletes, _, err := c.Load()
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Equal(t, "a2", athletes[0].ID)
}
