package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// IdempotencyKeyView represents read-optimized idempotency key data
type IdempotencyKeyView struct {
	Key             uuid.UUID  `json:"key"`
	UserID          uuid.UUID  `json:"user_id"`
	Endpoint        string     `json:"endpoint"`
	RequestHash     string     `json:"request_hash"`
	Status          string     `json:"status"`
	ResultBookingID *uuid.UUID `json:"result_booking_id,omitempty"`
	ExpiresAt       time.Time  `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
