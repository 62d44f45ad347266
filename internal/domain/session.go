package domain

import "time"

// Session is the active event context: which event is loaded and who is using it.
// swagger:model Session
type Session struct {
	EventID    string    `json:"weddingId"`
	UserName   string    `json:"userName"`
	CoupleName string    `json:"coupleName,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
}

// Snapshot is the full data set of one event as returned by the persistence collaborator.
type Snapshot struct {
	Guests   []Guest  `json:"guests"`
	Tables   []Table  `json:"tables"`
	Vendors  []Vendor `json:"vendors"`
	Tasks    []Task   `json:"tasks"`
	Visitors []Viewer `json:"visitors"`
}
