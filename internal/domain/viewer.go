package domain

import "time"

// Viewer is one login record for an event. Names repeat across logins.
// swagger:model Viewer
type Viewer struct {
	EventID   string    `json:"weddingId"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}
