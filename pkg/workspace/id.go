package workspace

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier. Ids only need to be unique within
// one collection.
func NewID() string {
	return uuid.NewString()
}
