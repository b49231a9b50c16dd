package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

type Room struct {
	id                 uuid.UUID
	hotelID            uuid.UUID
	number             string
	pricePerNightCents int64
	maxGuests          int
	// isAvailable is a derived cache over the live booking set, recomputed by
	// the availability resync. Never authoritative.
	isAvailable bool
	// isBlocked is the administrative disable switch, independent of bookings.
	isBlocked bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(hotelID uuid.UUID, number string, pricePerNightCents int64, maxGuests int) (*Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrEmptyRoomNumber
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativeRate
	}
	if maxGuests <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:                 uuid.New(),
		hotelID:            hotelID,
		number:             strings.TrimSpace(number),
		pricePerNightCents: pricePerNightCents,
		maxGuests:          maxGuests,
		isAvailable:        true,
	}, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	number string,
	pricePerNightCents int64,
	maxGuests int,
	isAvailable, isBlocked bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                 id,
		hotelID:            hotelID,
		number:             number,
		pricePerNightCents: pricePerNightCents,
		maxGuests:          maxGuests,
		isAvailable:        isAvailable,
		isBlocked:          isBlocked,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// IsBookable reports whether the room accepts new bookings at all. Date
// conflicts are checked separately against the live booking set.
func (r *Room) IsBookable() bool {
	return !r.isBlocked
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) HotelID() uuid.UUID         { return r.hotelID }
func (r *Room) Number() string             { return r.number }
func (r *Room) PricePerNightCents() int64  { return r.pricePerNightCents }
func (r *Room) MaxGuests() int             { return r.maxGuests }
func (r *Room) IsAvailable() bool          { return r.isAvailable }
func (r *Room) IsBlocked() bool            { return r.isBlocked }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
