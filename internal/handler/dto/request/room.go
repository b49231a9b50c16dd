package request

import (
	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID            uuid.UUID `json:"hotel_id" binding:"required"`
	Number             string    `json:"number" binding:"required"`
	PricePerNightCents int64     `json:"price_per_night_cents" binding:"required,min=0"`
	MaxGuests          int       `json:"max_guests" binding:"required,min=1"`
}

type SetRoomBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}
