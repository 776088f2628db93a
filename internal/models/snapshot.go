package models

import "time"

// SnapshotMeta is the lightweight part of a version snapshot, precomputed at
// push time so history listings never load athlete payloads.
type SnapshotMeta struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Source       SourceTag `json:"source"`
	AthleteCount int       `json:"athleteCount"`
	TotalViews   int       `json:"totalViews"`
	TikTokViews  int       `json:"tiktokViews"`
	IGReelViews  int       `json:"igReelViews"`
}

// VersionSnapshot is an immutable record of a roster state at push time.
// Created only by the version history manager, never mutated, deleted only
// by retention trimming.
type VersionSnapshot struct {
	SnapshotMeta
	Athletes Roster     `json:"athletes"`
	Alerts   AlertState `json:"alerts"`
}
