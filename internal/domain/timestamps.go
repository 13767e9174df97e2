// Package domain defines the content entities managed by the Framelight server.
package domain

import "time"

// Timestamps provides the common identity and lifecycle fields shared by
// every stored entity.
type Timestamps struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the underlying entity changes.
func (t *Timestamps) Touch() {
	t.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new entity.
func (t *Timestamps) InitTimestamps() {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
}
