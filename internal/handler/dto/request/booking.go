package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	CheckIn    time.Time `json:"check_in" binding:"required"`
	CheckOut   time.Time `json:"check_out" binding:"required"`
	GuestCount int       `json:"guest_count" binding:"required,min=1"`
}
