package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findRoomByIDSQL = `
SELECT r.id, r.hotel_id, h.name, r.number, r.price_per_night_cents, r.max_guests,
       r.is_available, r.is_blocked, r.created_at, r.updated_at
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = $1`

const findRoomsByHotelSQL = `
SELECT r.id, r.hotel_id, h.name, r.number, r.price_per_night_cents, r.max_guests,
       r.is_available, r.is_blocked, r.created_at, r.updated_at
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.hotel_id = $1
ORDER BY r.number`

// The && test against a half-open daterange is the same overlap the
// bookings exclusion constraint enforces, so search and insert agree on
// what conflicts.
const findAvailableRoomsSQL = `
SELECT r.id, r.hotel_id, h.name, r.number, r.price_per_night_cents, r.max_guests,
       r.is_available, r.is_blocked, r.created_at, r.updated_at
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.hotel_id = $1
  AND NOT r.is_blocked
  AND NOT EXISTS (
      SELECT 1 FROM bookings b
      WHERE b.room_id = r.id
        AND b.status = 'confirmed'
        AND daterange(b.check_in, b.check_out) && $2::daterange
  )
ORDER BY r.number`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	return findRoomByID(ctx, s.db, id)
}

func findRoomByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.RoomView, error) {
	var v queries.RoomView
	err := dbtx.QueryRow(ctx, findRoomByIDSQL, id).Scan(
		&v.ID, &v.HotelID, &v.HotelName, &v.Number, &v.PricePerNightCents, &v.MaxGuests,
		&v.IsAvailable, &v.IsBlocked, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return &v, nil
}

func (s *RoomReadStore) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, findRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms by hotel", err)
	}
	defer rows.Close()
	return scanRoomViews(rows)
}

func (s *RoomReadStore) FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID, stay string) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, findAvailableRoomsSQL, hotelID, stay)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available rooms", err)
	}
	defer rows.Close()
	return scanRoomViews(rows)
}

func scanRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	result := []*queries.RoomView{}
	for rows.Next() {
		var v queries.RoomView
		err := rows.Scan(
			&v.ID, &v.HotelID, &v.HotelName, &v.Number, &v.PricePerNightCents, &v.MaxGuests,
			&v.IsAvailable, &v.IsBlocked, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room view", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room views", err)
	}
	return result, nil
}
