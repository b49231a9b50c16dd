//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		r, err := booking.NewDateRange(day(2026, time.January, 10), day(2026, time.January, 13))
		require.NoError(t, err)
		assert.Equal(t, day(2026, time.January, 10), r.Start())
		assert.Equal(t, day(2026, time.January, 13), r.End())
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("時刻成分は日付に切り捨てられる", func(t *testing.T) {
		r, err := booking.NewDateRange(
			time.Date(2026, time.January, 10, 15, 30, 0, 0, time.UTC),
			time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, day(2026, time.January, 10), r.Start())
		assert.Equal(t, day(2026, time.January, 12), r.End())
	})

	t.Run("チェックアウトがチェックインより前はNG", func(t *testing.T) {
		_, err := booking.NewDateRange(day(2026, time.January, 13), day(2026, time.January, 10))
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("同日チェックイン・チェックアウトはNG", func(t *testing.T) {
		_, err := booking.NewDateRange(day(2026, time.January, 10), day(2026, time.January, 10))
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("切り捨て後に同日となる場合もNG", func(t *testing.T) {
		_, err := booking.NewDateRange(
			time.Date(2026, time.January, 10, 1, 0, 0, 0, time.UTC),
			time.Date(2026, time.January, 10, 23, 0, 0, 0, time.UTC),
		)
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := func(t *testing.T) booking.DateRange {
		return mustRange(t, day(2026, time.January, 10), day(2026, time.January, 15))
	}

	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		overlap bool
	}{
		{"部分的な重なり（後ろ側）", day(2026, time.January, 13), day(2026, time.January, 18), true},
		{"部分的な重なり（前側）", day(2026, time.January, 8), day(2026, time.January, 11), true},
		{"完全に内包される", day(2026, time.January, 11), day(2026, time.January, 13), true},
		{"完全に内包する", day(2026, time.January, 8), day(2026, time.January, 20), true},
		{"同一範囲", day(2026, time.January, 10), day(2026, time.January, 15), true},
		{"チェックアウト日に次のチェックイン（境界共有）", day(2026, time.January, 15), day(2026, time.January, 18), false},
		{"チェックイン日に前のチェックアウト（境界共有）", day(2026, time.January, 8), day(2026, time.January, 10), false},
		{"完全に後", day(2026, time.January, 20), day(2026, time.January, 22), false},
		{"完全に前", day(2026, time.January, 2), day(2026, time.January, 5), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := base(t)
			other := mustRange(t, tc.start, tc.end)
			// Overlap is symmetric.
			assert.Equal(t, tc.overlap, b.Overlaps(other))
			assert.Equal(t, tc.overlap, other.Overlaps(b))
		})
	}
}

func TestDateRangeNights(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		end    time.Time
		nights int
	}{
		{"1泊", day(2026, time.March, 1), day(2026, time.March, 2), 1},
		{"3泊", day(2026, time.March, 1), day(2026, time.March, 4), 3},
		{"月跨ぎ", day(2026, time.March, 30), day(2026, time.April, 2), 3},
		{"年跨ぎ", day(2026, time.December, 30), day(2027, time.January, 2), 3},
		{"非UTCタイムゾーン入力", time.Date(2026, time.March, 1, 23, 0, 0, 0, time.FixedZone("JST", 9*3600)), time.Date(2026, time.March, 5, 1, 0, 0, 0, time.FixedZone("JST", 9*3600)), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.nights, r.Nights())
		})
	}
}

func TestDateRangePredicates(t *testing.T) {
	r := mustRange(t, day(2026, time.June, 10), day(2026, time.June, 13))

	t.Run("StartsAfter", func(t *testing.T) {
		assert.True(t, r.StartsAfter(day(2026, time.June, 9)))
		assert.False(t, r.StartsAfter(day(2026, time.June, 10)), "チェックイン当日は開始済み扱い")
		assert.False(t, r.StartsAfter(day(2026, time.June, 11)))
	})

	t.Run("HasEnded", func(t *testing.T) {
		assert.False(t, r.HasEnded(day(2026, time.June, 12)))
		assert.True(t, r.HasEnded(day(2026, time.June, 13)), "チェックアウト日で滞在終了")
		assert.True(t, r.HasEnded(day(2026, time.June, 14)))
	})

	t.Run("ToDaterange", func(t *testing.T) {
		assert.Equal(t, "[2026-06-10,2026-06-13)", r.ToDaterange())
	})
}
