//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoomSpec() booking.RoomSpec {
	return booking.RoomSpec{
		ID:                 uuid.New(),
		HotelID:            uuid.New(),
		PricePerNightCents: 12000,
		MaxGuests:          2,
	}
}

func TestNewBooking(t *testing.T) {
	stay := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 13))

	t.Run("基本成功ケース", func(t *testing.T) {
		room := testRoomSpec()
		userID := uuid.New()

		b, err := booking.NewBooking(room, userID, stay, 2, booking.NewMoney(36000))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, room.ID, b.RoomID())
		assert.Equal(t, room.HotelID, b.HotelID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsLive())
		assert.Equal(t, int64(36000), b.TotalPrice().Cents())
	})

	t.Run("ゲスト数検証", func(t *testing.T) {
		cases := []struct {
			name       string
			guestCount int
			errIs      error
		}{
			{name: "定員ちょうどOK", guestCount: 2},
			{name: "1名OK", guestCount: 1},
			{name: "0名NG", guestCount: 0, errIs: booking.ErrInvalidGuestCount},
			{name: "負数NG", guestCount: -1, errIs: booking.ErrInvalidGuestCount},
			{name: "定員超過NG", guestCount: 3, errIs: booking.ErrCapacityExceeded},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b, err := booking.NewBooking(testRoomSpec(), uuid.New(), stay, tc.guestCount, booking.NewMoney(36000))
				if tc.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, b)
				} else {
					require.Nil(t, b)
					require.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})

	t.Run("負の価格NG", func(t *testing.T) {
		_, err := booking.NewBooking(testRoomSpec(), uuid.New(), stay, 1, booking.NewMoney(-1))
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestBookingCancel(t *testing.T) {
	newConfirmed := func(t *testing.T) *booking.Booking {
		stay := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 13))
		b, err := booking.NewBooking(testRoomSpec(), uuid.New(), stay, 1, booking.NewMoney(36000))
		require.NoError(t, err)
		return b
	}

	t.Run("チェックイン前はキャンセル可能", func(t *testing.T) {
		b := newConfirmed(t)
		require.NoError(t, b.Cancel(day(2026, time.July, 9)))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.IsCancelled())
		assert.False(t, b.IsLive())
	})

	t.Run("チェックイン当日はキャンセル不可", func(t *testing.T) {
		b := newConfirmed(t)
		require.ErrorIs(t, b.Cancel(day(2026, time.July, 10)), booking.ErrCancellationClosed)
		assert.True(t, b.IsLive())
	})

	t.Run("滞在開始後はキャンセル不可", func(t *testing.T) {
		b := newConfirmed(t)
		require.ErrorIs(t, b.Cancel(day(2026, time.July, 11)), booking.ErrCancellationClosed)
	})

	t.Run("二重キャンセルNG", func(t *testing.T) {
		b := newConfirmed(t)
		require.NoError(t, b.Cancel(day(2026, time.July, 1)))
		require.ErrorIs(t, b.Cancel(day(2026, time.July, 1)), booking.ErrAlreadyCancelled)
	})
}

func TestReconstructBooking(t *testing.T) {
	stay := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 13))
	id, roomID, hotelID, userID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	createdAt := day(2026, time.June, 1)

	b := booking.ReconstructBooking(id, roomID, hotelID, userID, stay, 2,
		booking.StatusCancelled, booking.NewMoney(36000), createdAt, createdAt)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.Equal(t, createdAt, b.CreatedAt())
	assert.True(t, b.HasEnded(day(2026, time.August, 1)))
	assert.False(t, b.HasEnded(day(2026, time.July, 12)))
}

func TestDisplayStatus(t *testing.T) {
	stayEnd := day(2026, time.July, 13)

	cases := []struct {
		name     string
		stored   booking.Status
		now      time.Time
		expected booking.Status
	}{
		{"滞在中のconfirmedはconfirmedのまま", booking.StatusConfirmed, day(2026, time.July, 12), booking.StatusConfirmed},
		{"滞在終了後のconfirmedはcompleted", booking.StatusConfirmed, day(2026, time.July, 13), booking.StatusCompleted},
		{"cancelledは滞在終了後もcancelled", booking.StatusCancelled, day(2026, time.August, 1), booking.StatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.DisplayStatus(tc.stored, stayEnd, tc.now))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.True(t, booking.StatusCancelled.IsValid())
	assert.False(t, booking.StatusCompleted.IsValid(), "completedは保存不可の表示専用ステータス")
	assert.False(t, booking.Status("pending").IsValid())
}
