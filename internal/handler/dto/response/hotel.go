package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	OwnerID   uuid.UUID `json:"owner_id"`
	RoomCount int32     `json:"room_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromHotelList(items []*queries.HotelView) []*HotelResponse {
	result := make([]*HotelResponse, len(items))
	for i, it := range items {
		result[i] = FromHotelView(it)
	}
	return result
}
