package repository

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// Recomputed from the full live booking set rather than toggled per event,
// so a missed or duplicated event can never leave the flag permanently wrong.
const recalcRoomAvailabilitySQL = `
UPDATE rooms r
SET is_available = (NOT r.is_blocked) AND NOT EXISTS (
        SELECT 1 FROM bookings b
        WHERE b.room_id = r.id
          AND b.status = 'confirmed'
          AND b.check_in <= CURRENT_DATE
          AND b.check_out > CURRENT_DATE
    ),
    updated_at = now()
WHERE r.id = $1
RETURNING r.is_available`

type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

func (r *AvailabilityRepository) RecalcRoomAvailability(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) (bool, error) {
	var available bool
	err := dbtx.QueryRow(ctx, recalcRoomAvailabilitySQL, roomID).Scan(&available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to recalculate room availability", err)
	}
	return available, nil
}
