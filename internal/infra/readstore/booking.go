package readstore

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findBookingByIDSQL = `
SELECT b.id, b.room_id, r.number, b.hotel_id, h.name, b.user_id, u.email,
       b.check_in, b.check_out, b.guest_count, b.status,
       b.total_price_cents, b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = b.hotel_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

const findBookingsFirstPageSQL = `
SELECT b.id, b.room_id, r.number, h.name,
       b.check_in, b.check_out, b.status,
       b.total_price_cents, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = b.hotel_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

const findBookingsKeysetSQL = `
SELECT b.id, b.room_id, r.number, h.name,
       b.check_in, b.check_out, b.status,
       b.total_price_cents, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = b.hotel_id
WHERE b.user_id = $1
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

const findLiveSpansSQL = `
SELECT id, check_in, check_out
FROM bookings
WHERE room_id = $1 AND status = 'confirmed'
ORDER BY check_in`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return findBookingByID(ctx, s.db, id)
}

func findBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := dbtx.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&v.ID, &v.RoomID, &v.RoomNumber, &v.HotelID, &v.HotelName, &v.UserID, &v.UserEmail,
		&v.CheckIn, &v.CheckOut, &v.GuestCount, &v.Status,
		&v.TotalPriceCents, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	v.Nights = int(v.CheckOut.Sub(v.CheckIn).Hours() / 24)
	v.Status = displayStatus(v.Status, v.CheckOut)
	return &v, nil
}

// The stored status is confirmed until cancelled; "completed" exists only at
// read time, classified against the stay end.
func displayStatus(stored string, checkOut time.Time) string {
	return booking.DisplayStatus(booking.Status(stored), checkOut, time.Now()).String()
}

func (s *BookingReadStore) FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, findBookingsFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}
	defer rows.Close()
	return scanBookingListItems(rows)
}

func (s *BookingReadStore) FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, findBookingsKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}
	defer rows.Close()
	return scanBookingListItems(rows)
}

// FindSnapshotByID returns the stored row as-is. Command-side checks need
// the persisted status, not the read-time classification.
func (s *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := s.db.QueryRow(ctx,
		`SELECT id, room_id, hotel_id, user_id, check_in, check_out, guest_count, status, total_price_cents
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.RoomID, &snap.HotelID, &snap.UserID,
		&snap.StayStart, &snap.StayEnd, &snap.GuestCount, &snap.Status, &snap.TotalPriceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking snapshot", err)
	}
	return &snap, nil
}

// LiveSpanRow carries the stored stay window of one confirmed booking.
type LiveSpanRow struct {
	ID       uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

func (s *BookingReadStore) FindLiveSpansByRoomID(ctx context.Context, roomID uuid.UUID) ([]LiveSpanRow, error) {
	rows, err := s.db.Query(ctx, findLiveSpansSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find live booking spans", err)
	}
	defer rows.Close()

	var result []LiveSpanRow
	for rows.Next() {
		var r LiveSpanRow
		if err := rows.Scan(&r.ID, &r.CheckIn, &r.CheckOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan live booking span", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate live booking spans", err)
	}
	return result, nil
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	result := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.RoomID, &item.RoomNumber, &item.HotelName,
			&item.CheckIn, &item.CheckOut, &item.Status,
			&item.TotalPriceCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.Status = displayStatus(item.Status, item.CheckOut)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}
	return result, nil
}
