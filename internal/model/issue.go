package model

import "time"

// Issue is one tracker issue assigned to the current user. Issues are fetched
// fresh for every operation and never modified locally.
type Issue struct {
	Key     string    // Stable tracker key, e.g. "PROJ-123"
	Summary string    // Human readable title, not guaranteed unique
	Status  string    // Workflow status name, display only
	Updated time.Time // Last update time reported by the tracker
}
