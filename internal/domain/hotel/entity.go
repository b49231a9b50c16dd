package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyHotelName   = errors.New("hotel name cannot be empty")
	ErrHotelNameTooLong = errors.New("hotel name is too long (max 255 characters)")
	ErrEmptyCity        = errors.New("hotel city cannot be empty")
)

const (
	MaxHotelNameLength = 255
)

type Hotel struct {
	id        uuid.UUID
	name      string
	city      string
	ownerID   uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(name, city string, ownerID uuid.UUID) (*Hotel, error) {
	if err := validateHotelName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}

	return &Hotel{
		id:      uuid.New(),
		name:    strings.TrimSpace(name),
		city:    strings.TrimSpace(city),
		ownerID: ownerID,
	}, nil
}

func ReconstructHotel(id uuid.UUID, name, city string, ownerID uuid.UUID, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{
		id:        id,
		name:      name,
		city:      city,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func validateHotelName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyHotelName
	}
	if len(name) > MaxHotelNameLength {
		return ErrHotelNameTooLong
	}
	return nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) OwnerID() uuid.UUID   { return h.ownerID }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
