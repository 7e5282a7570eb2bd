package model

import "time"

// GiftInfo records who a bottle came from or went to.
type GiftInfo struct {
	From string
	To   string
	Date *time.Time
}

// StatusHistoryEntry is one immutable record in a bottle's append-only
// lifecycle log. Two entries are duplicates iff they share timestamp,
// new status and quantity.
type StatusHistoryEntry struct {
	ID string
	// Timestamp of the transition, supplied by the coordinator.
	Timestamp time.Time
	NewStatus Status
	// PreviousStatus is nil only for the creation seed entry.
	PreviousStatus *Status
	// Quantity is the number of units moved, >= 0.
	Quantity int64
	GiftInfo *GiftInfo
	// Optional snapshot taken alongside the transition.
	Rating  *int32
	Comment string
}

// SameKey reports whether two entries collide on the dedup key.
func (e StatusHistoryEntry) SameKey(other StatusHistoryEntry) bool {
	return e.Timestamp.Equal(other.Timestamp) &&
		e.NewStatus == other.NewStatus &&
		e.Quantity == other.Quantity
}
