package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrCapacityExceeded        = errs.New("guest count exceeds room capacity")
	ErrRoomUnavailable         = errs.New("room unavailable for the requested dates")
	ErrBookingConflict         = errs.New("booking conflict detected at commit")
	ErrBookingNotOwned         = errs.New("booking not owned by user")
	ErrAlreadyCancelled        = errs.New("booking already cancelled")
	ErrTooLateToCancel         = errs.New("stay has started, too late to cancel")
	ErrDuplicateBooking        = errs.New("duplicate booking request")
	ErrIdempotencyKeyRequired  = errs.New("idempotency key required")
	ErrIdempotencyInProgress   = errs.New("booking request in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const bookingEndpoint = "POST /bookings"

type CreateBookingRequest struct {
	RoomID     uuid.UUID `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, actorRole user.Role) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	checker        AvailabilityChecker
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	checker AvailabilityChecker,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		checker:        checker,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	stay, err := booking.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	requestHash := calculateRequestHash(req)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	// Advisory pre-check. Cheap rejection before taking the room lock; the
	// authoritative check runs again inside the write transaction.
	available, err := c.checker.IsRoomAvailable(ctx, req.RoomID, stay)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrRoomUnavailable
	}

	view, err := c.createNewBooking(ctx, req, stay, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

// handleIdempotency claims the key. Returns a non-nil view when the request
// is a completed replay, nil when this call owns the key and should proceed.
func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	var claimed bool
	var record *shared.IdempotencyRecord

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, txErr := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, bookingEndpoint, requestHash, expiresAt)
		if txErr != nil {
			return txErr
		}
		claimed = inserted
		if inserted {
			return nil
		}
		existing, txErr := tx.Reads().IdempotencyByKey(ctx, idempotencyKey, userID)
		if txErr != nil {
			return txErr
		}
		record = existing
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if claimed {
		return nil, nil
	}

	switch record.Status {
	case "completed":
		if record.ResultBookingID != nil {
			// System-level access for idempotency replay
			return c.bookingQueries.GetByIDSystem(ctx, *record.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	req CreateBookingRequest,
	stay booking.DateRange,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Per-room lock held for the duration of check+insert. Serializes
		// concurrent creates on the same room; the exclusion constraint is
		// the backstop.
		roomSnap, txErr := tx.Rooms().LockForBooking(ctx, tx.DB(), req.RoomID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if roomSnap.IsBlocked {
			return ErrRoomUnavailable
		}

		spans, txErr := tx.Reads().LiveStaySpans(ctx, req.RoomID)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if booking.HasConflict(spans, stay) {
			return ErrRoomUnavailable
		}

		entity, txErr := c.factory.CreateBooking(booking.RoomSpec{
			ID:                 roomSnap.ID,
			HotelID:            roomSnap.HotelID,
			PricePerNightCents: roomSnap.PricePerNightCents,
			MaxGuests:          roomSnap.MaxGuests,
		}, userID, stay, req.GuestCount)
		if txErr != nil {
			return mapDomainError(txErr)
		}

		id, txErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindConflict) {
				// Lost the race despite the lock; caller sees it as plain
				// unavailability.
				return ErrBookingConflict
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		bookingID = id

		if _, txErr = tx.Availability().RecalcRoomAvailability(ctx, tx.DB(), req.RoomID); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		responseHash := calculateIDHash(id)
		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, responseHash, id)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: full view from the read store
	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
	actorRole user.Role,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.UserID != actorID && !actorRole.IsStaff() {
			return ErrBookingNotOwned
		}

		agg, err := reconstructFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := agg.Cancel(c.clock.Now()); err != nil {
			return mapDomainError(err)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, agg.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Full recompute from the remaining live set; another live booking
		// may still cover the present.
		if _, err := tx.Availability().RecalcRoomAvailability(ctx, tx.DB(), snap.RoomID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteBooking is the administrative hard-delete path outside the booking
// state machine. Normal cancellation retains the row for audit.
func (c *bookingCommandsImpl) DeleteBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	actorRole user.Role,
) error {
	if actorRole != user.RoleAdmin {
		return ErrAdminRoleNeeded
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Delete(ctx, tx.DB(), bookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := tx.Availability().RecalcRoomAvailability(ctx, tx.DB(), snap.RoomID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func reconstructFromSnapshot(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	stay, err := booking.NewDateRange(snap.StayStart, snap.StayEnd)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		snap.ID, snap.RoomID, snap.HotelID, snap.UserID,
		stay,
		snap.GuestCount,
		booking.Status(snap.Status),
		booking.NewMoney(snap.TotalPriceCents),
		time.Time{}, time.Time{},
	), nil
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidDateRange), errors.Is(err, booking.ErrCheckInInPast):
		return errs.Mark(err, ErrInvalidDateRange)
	case errors.Is(err, booking.ErrCapacityExceeded), errors.Is(err, booking.ErrInvalidGuestCount):
		return errs.Mark(err, ErrCapacityExceeded)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return errs.Mark(err, ErrAlreadyCancelled)
	case errors.Is(err, booking.ErrCancellationClosed):
		return errs.Mark(err, ErrTooLateToCancel)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func calculateRequestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
