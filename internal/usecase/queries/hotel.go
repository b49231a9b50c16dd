package queries

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelNotFound = errs.New("hotel not found")

// HotelView represents read-optimized hotel data
type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	OwnerID   uuid.UUID `json:"owner_id"`
	RoomCount int32     `json:"room_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context, city string) ([]*HotelView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	FindAll(ctx context.Context, city string) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	readStore HotelReadStore
}

func NewHotelQueries(readStore HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{readStore: readStore}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context, city string) ([]*HotelView, error) {
	return q.readStore.FindAll(ctx, city)
}
