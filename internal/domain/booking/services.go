package booking

import (
	"github.com/google/uuid"
)

// StaySpan is the minimal projection of a live booking used for conflict
// checks.
type StaySpan struct {
	BookingID uuid.UUID
	Stay      DateRange
}

// FindConflict returns the first live span overlapping the candidate range.
func FindConflict(existing []StaySpan, candidate DateRange) (StaySpan, bool) {
	for _, span := range existing {
		if span.Stay.Overlaps(candidate) {
			return span, true
		}
	}
	return StaySpan{}, false
}

func HasConflict(existing []StaySpan, candidate DateRange) bool {
	_, found := FindConflict(existing, candidate)
	return found
}
