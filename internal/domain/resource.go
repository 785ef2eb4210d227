package domain

import "time"

// Record is implemented by every non-singleton resource type so the
// store can persist and index them through one generic path.
type Record interface {
	// Key is the collection-unique identifier, immutable after creation.
	Key() string
	// StampedAt is the record's temporal field (creation/event instant).
	StampedAt() time.Time
}
