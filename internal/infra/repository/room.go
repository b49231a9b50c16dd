package repository

import (
	"context"

	"staybook/internal/domain/room"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, dbtx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO rooms (id, hotel_id, number, price_per_night_cents, max_guests, is_available, is_blocked)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		rm.ID(), rm.HotelID(), rm.Number(), rm.PricePerNightCents(), rm.MaxGuests(), rm.IsAvailable(), rm.IsBlocked(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

// LockForBooking holds the room row until the surrounding transaction ends,
// so concurrent bookings for the same room serialize on this lock.
func (r *RoomRepository) LockForBooking(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	err := dbtx.QueryRow(ctx,
		`SELECT id, hotel_id, number, price_per_night_cents, max_guests, is_available, is_blocked
		 FROM rooms
		 WHERE id = $1
		 FOR UPDATE`,
		roomID,
	).Scan(&snap.ID, &snap.HotelID, &snap.Number, &snap.PricePerNightCents, &snap.MaxGuests, &snap.IsAvailable, &snap.IsBlocked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return &snap, nil
}

func (r *RoomRepository) SetBlocked(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, blocked bool) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE rooms SET is_blocked = $2, updated_at = now() WHERE id = $1`,
		roomID, blocked)
	if err != nil {
		return infra.WrapRepoErr("failed to update room block flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
