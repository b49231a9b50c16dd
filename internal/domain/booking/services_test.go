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

func TestFindConflict(t *testing.T) {
	spanA := booking.StaySpan{
		BookingID: uuid.New(),
		Stay:      mustRange(t, day(2026, time.September, 1), day(2026, time.September, 5)),
	}
	spanB := booking.StaySpan{
		BookingID: uuid.New(),
		Stay:      mustRange(t, day(2026, time.September, 10), day(2026, time.September, 15)),
	}
	existing := []booking.StaySpan{spanA, spanB}

	t.Run("重なる滞在を検出する", func(t *testing.T) {
		candidate := mustRange(t, day(2026, time.September, 3), day(2026, time.September, 6))

		found, ok := booking.FindConflict(existing, candidate)
		require.True(t, ok)
		assert.Equal(t, spanA.BookingID, found.BookingID)
	})

	t.Run("最初に重なる滞在を返す", func(t *testing.T) {
		candidate := mustRange(t, day(2026, time.September, 4), day(2026, time.September, 11))

		found, ok := booking.FindConflict(existing, candidate)
		require.True(t, ok)
		assert.Equal(t, spanA.BookingID, found.BookingID)
	})

	t.Run("境界共有は衝突しない", func(t *testing.T) {
		candidate := mustRange(t, day(2026, time.September, 5), day(2026, time.September, 10))

		_, ok := booking.FindConflict(existing, candidate)
		assert.False(t, ok, "前の滞在のチェックアウト日から次の滞在のチェックイン日までの隙間に収まる")
	})

	t.Run("空の滞在一覧は衝突しない", func(t *testing.T) {
		candidate := mustRange(t, day(2026, time.September, 1), day(2026, time.September, 30))

		_, ok := booking.FindConflict(nil, candidate)
		assert.False(t, ok)
	})
}

func TestHasConflict(t *testing.T) {
	existing := []booking.StaySpan{
		{BookingID: uuid.New(), Stay: mustRange(t, day(2026, time.October, 1), day(2026, time.October, 5))},
	}

	assert.True(t, booking.HasConflict(existing, mustRange(t, day(2026, time.October, 4), day(2026, time.October, 8))))
	assert.False(t, booking.HasConflict(existing, mustRange(t, day(2026, time.October, 5), day(2026, time.October, 8))))
}
