package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidGuestCount  = errors.New("guest count must be positive")
	ErrCapacityExceeded   = errors.New("guest count exceeds room capacity")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrCancellationClosed = errors.New("stay has started, cancellation window closed")
)

// RoomSpec is the minimal room projection the booking aggregate needs.
type RoomSpec struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	PricePerNightCents int64
	MaxGuests          int
}

type Booking struct {
	id         uuid.UUID
	roomID     uuid.UUID
	hotelID    uuid.UUID
	userID     uuid.UUID
	stay       DateRange
	guestCount int
	status     Status
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	room RoomSpec,
	userID uuid.UUID,
	stay DateRange,
	guestCount int,
	totalPrice Money,
) (*Booking, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if guestCount > room.MaxGuests {
		return nil, ErrCapacityExceeded
	}
	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		roomID:     room.ID,
		hotelID:    room.HotelID,
		userID:     userID,
		stay:       stay,
		guestCount: guestCount,
		status:     StatusConfirmed,
		totalPrice: totalPrice,
	}, nil
}

func ReconstructBooking(
	id, roomID, hotelID, userID uuid.UUID,
	stay DateRange,
	guestCount int,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		roomID:     roomID,
		hotelID:    hotelID,
		userID:     userID,
		stay:       stay,
		guestCount: guestCount,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel transitions the booking to cancelled. Only permitted strictly
// before check-in; cancelled is terminal.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.stay.StartsAfter(now) {
		return ErrCancellationClosed
	}
	b.status = StatusCancelled
	return nil
}

// IsLive reports whether the booking counts toward conflicts and room
// availability.
func (b *Booking) IsLive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) HasEnded(now time.Time) bool {
	return b.stay.HasEnded(now)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) HotelID() uuid.UUID   { return b.hotelID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Stay() DateRange      { return b.stay }
func (b *Booking) GuestCount() int      { return b.guestCount }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
