package store

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

const draftEnvelopeVersion = 1

// draftEnvelope is the on-disk format of the device-local draft cache.
type draftEnvelope struct {
	Version  int               `json:"version"`
	SavedAt  time.Time         `json:"savedAt"`
	Athletes models.Roster     `json:"athletes"`
	Alerts   models.AlertState `json:"alerts"`
}

// DraftCache persists the local roster draft to a zstd-compressed file so a
// restart with an unreachable or empty remote still renders the dashboard.
// Callers treat writes as best-effort.
type DraftCache struct {
	path       string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewDraftCache(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) *DraftCache {
	return &DraftCache{path: conf.Sync.DraftCachePath, compressor: compressor, logger: logger}
}

// Save writes atomically: temp file, fsync, rename.
func (c *DraftCache) Save(athletes models.Roster, alerts models.AlertState) error {
	envelope := draftEnvelope{
		Version:  draftEnvelopeVersion,
		SavedAt:  time.Now().UTC(),
		Athletes: athletes,
		Alerts:   alerts,
	}
	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	data, err := c.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := c.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, c.path)
}

// Load reads the cached draft. A missing file returns (nil, nil, nil) and the
// caller falls through to a placeholder roster. A legacy bare-array payload
// is migrated with a warning.
func (c *DraftCache) Load() (models.Roster, *models.AlertState, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	decompressed, err := c.compressor.Decompress(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decompress draft cache: %w", err)
	}

	var envelope draftEnvelope
	if err := json.Unmarshal(decompressed, &envelope); err == nil && envelope.Version == draftEnvelopeVersion {
		alerts := envelope.Alerts
		return envelope.Athletes, &alerts, nil
	}

	// legacy format: a bare athlete array with no envelope
	c.logger.Warnf(providers.TypeApp, "Legacy draft cache found, migrating")
	var athletes models.Roster
	if err := json.Unmarshal(decompressed, &athletes); err != nil {
		c.logger.Warnf(providers.TypeApp, "Draft cache migration failed")
		return nil, nil, err
	}
	return athletes, &models.AlertState{}, nil
}
