//go:build unit || e2e

package builder

import (
	"time"

	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	Name      string
	City      string
	OwnerID   uuid.UUID
	RoomCount int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewHotelBuilder() *HotelBuilder {
	now := time.Now()
	return &HotelBuilder{
		Name:      "Test Hotel",
		City:      "Tokyo",
		OwnerID:   uuid.New(),
		RoomCount: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (h *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Name: h.Name,
		City: h.City,
	}
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:        uuid.New(),
		Name:      h.Name,
		City:      h.City,
		OwnerID:   h.OwnerID,
		RoomCount: h.RoomCount,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (h *HotelBuilder) BuildSnapshot() *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:      uuid.New(),
		Name:    h.Name,
		City:    h.City,
		OwnerID: h.OwnerID,
	}
}

// Fluent builder methods
func (h *HotelBuilder) WithName(name string) *HotelBuilder {
	h.Name = name
	return h
}

func (h *HotelBuilder) WithCity(city string) *HotelBuilder {
	h.City = city
	return h
}

func (h *HotelBuilder) WithOwnerID(ownerID uuid.UUID) *HotelBuilder {
	h.OwnerID = ownerID
	return h
}
