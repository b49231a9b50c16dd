package booking

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"

	// StatusCompleted is a read-time classification for confirmed stays whose
	// end date has already passed. It is never stored.
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is a storable status.
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// DisplayStatus classifies a stored status for presentation. A confirmed
// booking whose stay has ended reads as completed.
func DisplayStatus(stored Status, stayEnd, now time.Time) Status {
	if stored == StatusConfirmed && !now.Before(stayEnd) {
		return StatusCompleted
	}
	return stored
}
