package booking

import (
	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking validates the stay against the room spec and prices it.
// Conflict detection is not the factory's concern; the persistence boundary
// re-checks inside the write transaction.
func (f *Factory) CreateBooking(
	room RoomSpec,
	userID uuid.UUID,
	stay DateRange,
	guestCount int,
) (*Booking, error) {
	today := TruncateToDay(f.Clock.Now())
	if stay.Start().Before(today) {
		return nil, ErrCheckInInPast
	}

	priceCents, err := f.PriceCalculator.CalculatePriceCents(room.PricePerNightCents, stay.Nights())
	if err != nil {
		return nil, err
	}

	return NewBooking(room, userID, stay, guestCount, NewMoney(priceCents))
}
