package repository

import (
	"context"

	"staybook/internal/domain/hotel"
	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type HotelRepository struct{}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{}
}

func (r *HotelRepository) Create(ctx context.Context, dbtx db.DBTX, h *hotel.Hotel) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO hotels (id, name, city, owner_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		h.ID(), h.Name(), h.City(), h.OwnerID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

// Delete cascades to rooms and their bookings via FK constraints.
func (r *HotelRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}
