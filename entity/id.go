package entity

import "github.com/google/uuid"

// NewID returns a fresh unique entity id. Imported scenes bring their own
// ids; this is for entities created by drawing tools.
func NewID() string {
	return uuid.NewString()
}
