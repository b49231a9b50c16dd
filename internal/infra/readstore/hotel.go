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

const findHotelByIDSQL = `
SELECT h.id, h.name, h.city, h.owner_id,
       (SELECT count(*) FROM rooms r WHERE r.hotel_id = h.id) AS room_count,
       h.created_at, h.updated_at
FROM hotels h
WHERE h.id = $1`

const findHotelsSQL = `
SELECT h.id, h.name, h.city, h.owner_id,
       (SELECT count(*) FROM rooms r WHERE r.hotel_id = h.id) AS room_count,
       h.created_at, h.updated_at
FROM hotels h
WHERE $1 = '' OR h.city = $1
ORDER BY h.name`

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

func (s *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	return findHotelByID(ctx, s.db, id)
}

func findHotelByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.HotelView, error) {
	var v queries.HotelView
	err := dbtx.QueryRow(ctx, findHotelByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.City, &v.OwnerID, &v.RoomCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return &v, nil
}

func (s *HotelReadStore) FindAll(ctx context.Context, city string) ([]*queries.HotelView, error) {
	rows, err := s.db.Query(ctx, findHotelsSQL, city)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotels", err)
	}
	defer rows.Close()
	return scanHotelViews(rows)
}

func scanHotelViews(rows pgx.Rows) ([]*queries.HotelView, error) {
	result := []*queries.HotelView{}
	for rows.Next() {
		var v queries.HotelView
		err := rows.Scan(&v.ID, &v.Name, &v.City, &v.OwnerID, &v.RoomCount, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel view", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel views", err)
	}
	return result, nil
}
