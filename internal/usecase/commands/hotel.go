package commands

import (
	"context"

	"staybook/internal/domain/hotel"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrHotelNotOwned   = errs.New("hotel not owned by user")
	ErrStaffRoleNeeded = errs.New("manager or admin role required")
	ErrAdminRoleNeeded = errs.New("admin role required")
)

type CreateHotelRequest struct {
	Name string
	City string
}

type CreateHotelResult struct {
	HotelID uuid.UUID
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, req CreateHotelRequest, actorID uuid.UUID, actorRole user.Role) (*CreateHotelResult, error)
	DeleteHotel(ctx context.Context, hotelID uuid.UUID, actorRole user.Role) error
}

type hotelCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHotelCommands(uow shared.UnitOfWork) HotelCommands {
	return &hotelCommandsImpl{uow: uow}
}

func (c *hotelCommandsImpl) CreateHotel(
	ctx context.Context,
	req CreateHotelRequest,
	actorID uuid.UUID,
	actorRole user.Role,
) (*CreateHotelResult, error) {
	if !actorRole.IsStaff() {
		return nil, ErrStaffRoleNeeded
	}

	entity, err := hotel.NewHotel(req.Name, req.City, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Hotels().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateHotelResult{HotelID: createdID}, nil
}

// DeleteHotel cascades to the hotel's rooms and their bookings at the
// schema level.
func (c *hotelCommandsImpl) DeleteHotel(ctx context.Context, hotelID uuid.UUID, actorRole user.Role) error {
	if actorRole != user.RoleAdmin {
		return ErrAdminRoleNeeded
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().HotelByID(ctx, hotelID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Hotels().Delete(ctx, tx.DB(), hotelID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
