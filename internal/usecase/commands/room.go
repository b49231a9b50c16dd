package commands

import (
	"context"

	"staybook/internal/domain/room"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID            uuid.UUID
	Number             string
	PricePerNightCents int64
	MaxGuests          int
}

type CreateRoomResult struct {
	RoomID uuid.UUID
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest, actorID uuid.UUID, actorRole user.Role) (*CreateRoomResult, error)
	SetRoomBlocked(ctx context.Context, roomID uuid.UUID, blocked bool, actorRole user.Role) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) CreateRoom(
	ctx context.Context,
	req CreateRoomRequest,
	actorID uuid.UUID,
	actorRole user.Role,
) (*CreateRoomResult, error) {
	if !actorRole.IsStaff() {
		return nil, ErrStaffRoleNeeded
	}

	var createdID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hotelSnap, txErr := tx.Reads().HotelByID(ctx, req.HotelID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if actorRole != user.RoleAdmin && hotelSnap.OwnerID != actorID {
			return ErrHotelNotOwned
		}

		entity, txErr := room.NewRoom(req.HotelID, req.Number, req.PricePerNightCents, req.MaxGuests)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}

		id, txErr := tx.Rooms().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateRoomResult{RoomID: createdID}, nil
}

// SetRoomBlocked flips the administrative disable switch and re-derives the
// availability flag so the two never disagree.
func (c *roomCommandsImpl) SetRoomBlocked(
	ctx context.Context,
	roomID uuid.UUID,
	blocked bool,
	actorRole user.Role,
) error {
	if !actorRole.IsStaff() {
		return ErrStaffRoleNeeded
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, roomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().SetBlocked(ctx, tx.DB(), roomID, blocked); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if _, err := tx.Availability().RecalcRoomAvailability(ctx, tx.DB(), roomID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
