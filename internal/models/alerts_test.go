package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertState_DismissIdempotent(t *testing.T) {
	a := AlertState{FailedTikTokURLs: []string{"u1", "u2"}}

	a.Dismiss("u1")
	a.Dismiss("u1")
	a.Dismiss("")

	assert.Equal(t, []string{"u1"}, a.DismissedAlerts)
	assert.Equal(t, []string{"u2"}, a.ActiveTikTok())
}

func TestAlertState_ResurfaceOnRepeatFailure(t *testing.T) {
	a := AlertState{}
	a.RecordTikTokFailures([]string{"u1", "u2"})
	a.Dismiss("u1")
	assert.Equal(t, []string{"u2"}, a.ActiveTikTok())

	// u1 fails again on the next pass, its dismissal is dropped
	a.RecordTikTokFailures([]string{"u1"})
	assert.Equal(t, []string{"u1"}, a.ActiveTikTok())
	assert.Empty(t, a.DismissedAlerts)
}

func TestAlertState_DismissalSurvivesWhenURLRecovers(t *testing.T) {
	a := AlertState{}
	a.RecordInstagramFailures([]string{"u1"})
	a.Dismiss("u1")

	// u1 recovers; dismissal stays for other lists
	a.RecordInstagramFailures([]string{"u2"})
	assert.Equal(t, []string{"u2"}, a.ActiveInstagram())
	assert.Equal(t, []string{"u1"}, a.DismissedAlerts)
}

func TestAlertState_ListsAreIndependent(t *testing.T) {
	a := AlertState{}
	a.RecordTikTokFailures([]string{"t1"})
	a.RecordInstagramFailures([]string{"i1"})

	assert.Equal(t, []string{"t1"}, a.ActiveTikTok())
	assert.Equal(t, []string{"i1"}, a.ActiveInstagram())
}

func TestAlertState_Clone_Independent(t *testing.T) {
	a := AlertState{FailedTikTokURLs: []string{"u1"}}
	cp := a.Clone()
	cp.FailedTikTokURLs[0] = "changed"
	cp.Dismiss("u1")

	assert.Equal(t, "u1", a.FailedTikTokURLs[0])
	assert.Empty(t, a.DismissedAlerts)
}
