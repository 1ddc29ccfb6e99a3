package domain

import "time"

// DispatchState represents the downstream relay's view of a dispatched entry.
type DispatchState string

const (
	DispatchQueued    DispatchState = "queued"
	DispatchDelivered DispatchState = "delivered"
	DispatchFailed    DispatchState = "failed"
)

// IsValid returns true if the state is one of the defined constants.
func (s DispatchState) IsValid() bool {
	switch s {
	case DispatchQueued, DispatchDelivered, DispatchFailed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s DispatchState) String() string {
	return string(s)
}

// Dispatch is the relay's acknowledgement for one published entry.
type Dispatch struct {
	ID      string
	EntryID int64
	State   DispatchState
	SentAt  time.Time
}
