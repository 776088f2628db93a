package syncer

import "time"

// State is the primary synchronization state of the local draft. RemoteAhead
// is not a state; it is an orthogonal flag that only drives the conflict
// banner.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateSynced
	StateDraftDirty
	StatePushing
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateSynced:
		return "synced"
	case StateDraftDirty:
		return "draft-dirty"
	case StatePushing:
		return "pushing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the sync indicator surface for the dashboard.
type Status struct {
	State        string    `json:"state"`
	Dirty        bool      `json:"dirty"`
	CloudSynced  bool      `json:"cloudSynced"`
	RemoteAhead  bool      `json:"remoteAhead"`
	AthleteCount int       `json:"athleteCount"`
	LastRemoteAt time.Time `json:"lastRemoteAt"`
}
