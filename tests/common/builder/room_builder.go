//go:build unit || e2e

package builder

import (
	"time"

	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	HotelID            uuid.UUID
	HotelName          string
	Number             string
	PricePerNightCents int64
	MaxGuests          int
	IsAvailable        bool
	IsBlocked          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		HotelID:            uuid.New(),
		HotelName:          "Test Hotel",
		Number:             "101",
		PricePerNightCents: 10000,
		MaxGuests:          2,
		IsAvailable:        true,
		IsBlocked:          false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		HotelID:            r.HotelID,
		Number:             r.Number,
		PricePerNightCents: r.PricePerNightCents,
		MaxGuests:          r.MaxGuests,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 uuid.New(),
		HotelID:            r.HotelID,
		HotelName:          r.HotelName,
		Number:             r.Number,
		PricePerNightCents: r.PricePerNightCents,
		MaxGuests:          r.MaxGuests,
		IsAvailable:        r.IsAvailable,
		IsBlocked:          r.IsBlocked,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 uuid.New(),
		HotelID:            r.HotelID,
		Number:             r.Number,
		PricePerNightCents: r.PricePerNightCents,
		MaxGuests:          r.MaxGuests,
		IsAvailable:        r.IsAvailable,
		IsBlocked:          r.IsBlocked,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithHotelID(hotelID uuid.UUID) *RoomBuilder {
	r.HotelID = hotelID
	return r
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithPrice(cents int64) *RoomBuilder {
	r.PricePerNightCents = cents
	return r
}

func (r *RoomBuilder) WithMaxGuests(n int) *RoomBuilder {
	r.MaxGuests = n
	return r
}

func (r *RoomBuilder) AsBlocked() *RoomBuilder {
	r.IsBlocked = true
	r.IsAvailable = false
	return r
}
