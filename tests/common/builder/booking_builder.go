//go:build unit || e2e

package builder

import (
	"time"

	dombooking "staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID          uuid.UUID
	RoomNumber      string
	HotelID         uuid.UUID
	HotelName       string
	UserID          uuid.UUID
	UserEmail       string
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	Status          string
	TotalPriceCents int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	checkIn := time.Date(now.Year()+1, time.January, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		RoomID:          uuid.New(),
		RoomNumber:      "101",
		HotelID:         uuid.New(),
		HotelName:       "Test Hotel",
		UserID:          uuid.New(),
		UserEmail:       "guest@example.com",
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, 3),
		GuestCount:      2,
		Status:          "confirmed",
		TotalPriceCents: 30000,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildStay() (dombooking.DateRange, error) {
	return dombooking.NewDateRange(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestCount: b.GuestCount,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.BookingView{
		ID:              uuid.New(),
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		UserID:          b.UserID,
		UserEmail:       b.UserEmail,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          nights,
		GuestCount:      b.GuestCount,
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:              uuid.New(),
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		HotelName:       b.HotelName,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              uuid.New(),
		RoomID:          b.RoomID,
		HotelID:         b.HotelID,
		UserID:          b.UserID,
		StayStart:       b.CheckIn,
		StayEnd:         b.CheckOut,
		GuestCount:      b.GuestCount,
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuestCount(count int) *BookingBuilder {
	b.GuestCount = count
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
