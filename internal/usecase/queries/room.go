package queries

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound    = errs.New("room not found")
	ErrInvalidStayDate = errs.New("invalid stay dates")
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	HotelName          string    `json:"hotel_name"`
	Number             string    `json:"number"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	MaxGuests          int       `json:"max_guests"`
	IsAvailable        bool      `json:"is_available"`
	IsBlocked          bool      `json:"is_blocked"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	// ListAvailable returns rooms of the hotel with no confirmed booking
	// overlapping [checkIn, checkOut) and not blocked by staff.
	ListAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	// FindAvailableByHotelID takes the stay as a half-open daterange
	// literal, the same form the storage layer indexes bookings by.
	FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID, stay string) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	return q.readStore.FindByHotelID(ctx, hotelID)
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*RoomView, error) {
	stay, err := booking.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayDate)
	}
	return q.readStore.FindAvailableByHotelID(ctx, hotelID, stay.ToDaterange())
}
