package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrCheckInInPast    = errors.New("check-in date cannot be in the past")
)

// DateRange is a half-open interval of whole days: [start, end).
// A stay checking out on day X does not conflict with one checking in on day X.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	if !end.After(start) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{
		start: start,
		end:   end,
	}, nil
}

func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps implements half-open interval intersection. Touching endpoints do
// not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// Nights counts whole days between start and end. Both bounds are anchored at
// noon so the count survives DST transitions in non-UTC inputs.
func (r DateRange) Nights() int {
	a := r.start.Add(12 * time.Hour)
	b := r.end.Add(12 * time.Hour)
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}

// StartsAfter reports whether check-in is strictly after the given instant.
// Cancellation is only allowed while this holds.
func (r DateRange) StartsAfter(now time.Time) bool {
	return r.start.After(now)
}

// HasEnded reports whether the stay is over at the given instant.
func (r DateRange) HasEnded(now time.Time) bool {
	return !now.Before(r.end)
}

// ToDaterange renders the range in PostgreSQL daterange literal form.
func (r DateRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}
