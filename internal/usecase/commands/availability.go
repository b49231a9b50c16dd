package commands

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityChecker decides whether a room can host a stay. Pure read: a
// room is unavailable when it is administratively blocked or any live
// booking overlaps the candidate range. Outside a transaction the answer is
// advisory only; CreateBooking re-checks under the room lock.
type AvailabilityChecker interface {
	IsRoomAvailable(ctx context.Context, roomID uuid.UUID, stay booking.DateRange) (bool, error)
}

type availabilityCheckerImpl struct {
	reads shared.CommandReads
}

func NewAvailabilityChecker(uow shared.UnitOfWork) AvailabilityChecker {
	return &availabilityCheckerImpl{reads: uow.CommandReads()}
}

func (a *availabilityCheckerImpl) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, stay booking.DateRange) (bool, error) {
	roomSnap, err := a.reads.RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrRoomNotFound
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if roomSnap.IsBlocked {
		return false, nil
	}

	spans, err := a.reads.LiveStaySpans(ctx, roomID)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return !booking.HasConflict(spans, stay), nil
}
