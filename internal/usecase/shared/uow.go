package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/hotel"
	"staybook/internal/domain/room"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Hotels() HotelRepository
	Availability() AvailabilityRepository
	Idempotency() IdempotencyRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads resolves snapshots for command-side validation. Bound to the
// surrounding transaction when obtained via Tx.Reads(), so in-tx reads see
// locked rows.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	LiveStaySpans(ctx context.Context, roomID uuid.UUID) ([]booking.StaySpan, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// Minimal snapshots for command read operations
type RoomSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Number             string
	PricePerNightCents int64
	MaxGuests          int
	IsAvailable        bool
	IsBlocked          bool
}

type HotelSnapshot struct {
	ID      uuid.UUID
	Name    string
	City    string
	OwnerID uuid.UUID
}

type BookingSnapshot struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	HotelID         uuid.UUID
	UserID          uuid.UUID
	StayStart       time.Time
	StayEnd         time.Time
	GuestCount      int
	Status          string
	TotalPriceCents int64
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type BookingRepository interface {
	// Create inserts the booking only if no live booking on the same room
	// overlaps its stay. A lost race surfaces as KindConflict.
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *room.Room) (uuid.UUID, error)
	// LockForBooking takes the room's row lock for the duration of the
	// surrounding transaction, serializing conflict checks per room.
	LockForBooking(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) (*RoomSnapshot, error)
	SetBlocked(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, blocked bool) error
}

type HotelRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, h *hotel.Hotel) (uuid.UUID, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

// AvailabilityRepository keeps rooms.is_available in sync with the live
// booking set. Recomputes from the full set, never applies a delta.
type AvailabilityRepository interface {
	RecalcRoomAvailability(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key. Reports true when this call inserted it,
	// false when an earlier request already holds it.
	TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, responseHash string, resultBookingID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, email, passwordHash, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
