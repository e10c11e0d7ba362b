package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutSlots_HourlyWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// Окно 09:00-12:00 -> три часовых слота
	start := time.Date(2025, 10, 15, 9, 0, 0, 0, loc)
	end := time.Date(2025, 10, 15, 12, 0, 0, 0, loc)

	slots := cutSlots(42, start, end, time.Hour, loc)

	require.Len(t, slots, 3)

	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "10:00", slots[0].EndTime.String())
	assert.Equal(t, "10:00", slots[1].StartTime.String())
	assert.Equal(t, "11:00", slots[1].EndTime.String())
	assert.Equal(t, "11:00", slots[2].StartTime.String())
	assert.Equal(t, "12:00", slots[2].EndTime.String())

	for _, s := range slots {
		assert.Equal(t, int64(42), s.VenueID)
		assert.False(t, s.IsBooked)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), s.SlotDate)
	}
}

func TestCutSlots_TrailingPartialDropped(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// Окно 09:00-11:30 -> хвост 11:00-11:30 короче шага и отбрасывается
	start := time.Date(2025, 10, 15, 9, 0, 0, 0, loc)
	end := time.Date(2025, 10, 15, 11, 30, 0, 0, loc)

	slots := cutSlots(1, start, end, time.Hour, loc)

	require.Len(t, slots, 2)
	assert.Equal(t, "11:00", slots[1].EndTime.String())
}

func TestCutSlots_WindowShorterThanSlot(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	start := time.Date(2025, 10, 15, 9, 0, 0, 0, loc)
	end := start.Add(30 * time.Minute)

	slots := cutSlots(1, start, end, time.Hour, loc)

	assert.Empty(t, slots)
}

func TestCutSlots_Contiguity(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	start := time.Date(2025, 10, 15, 6, 0, 0, 0, loc)
	end := time.Date(2025, 10, 15, 22, 0, 0, 0, loc)

	slots := cutSlots(1, start, end, 90*time.Minute, loc)

	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime,
			"slot %d must start where slot %d ends", i, i-1)
	}
}

func TestCutSlots_NormalizesToConfiguredTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// Одно и то же окно, выраженное в UTC: 03:30 UTC == 09:00 IST
	startUTC := time.Date(2025, 10, 15, 3, 30, 0, 0, time.UTC)
	endUTC := time.Date(2025, 10, 15, 6, 30, 0, 0, time.UTC)

	slots := cutSlots(1, startUTC, endUTC, time.Hour, loc)

	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "12:00", slots[2].EndTime.String())
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), slots[0].SlotDate)
}

func TestCutSlots_WindowCrossesMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	start := time.Date(2025, 10, 15, 23, 0, 0, 0, loc)
	end := time.Date(2025, 10, 16, 1, 0, 0, 0, loc)

	slots := cutSlots(1, start, end, time.Hour, loc)

	require.Len(t, slots, 2)

	// Слот до полуночи хранится на дате начала с концом "24:00"
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), slots[0].SlotDate)
	assert.Equal(t, "23:00", slots[0].StartTime.String())
	assert.Equal(t, "24:00", slots[0].EndTime.String())

	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), slots[1].SlotDate)
	assert.Equal(t, "00:00", slots[1].StartTime.String())
	assert.Equal(t, "01:00", slots[1].EndTime.String())

	for _, s := range slots {
		assert.True(t, s.StartTime.IsBefore(s.EndTime),
			"slot %s-%s must keep start < end", s.StartTime, s.EndTime)
	}
}

func TestCutSlots_UTCWindowEndingAtLocalMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 14:30-18:30 UTC == 20:00-00:00 IST: нормализация сдвигает конец окна
	// ровно на местную полночь
	start := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)
	end := time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC)

	slots := cutSlots(1, start, end, time.Hour, loc)

	require.Len(t, slots, 4)
	assert.Equal(t, "20:00", slots[0].StartTime.String())
	assert.Equal(t, "23:00", slots[3].StartTime.String())
	assert.Equal(t, "24:00", slots[3].EndTime.String())

	for _, s := range slots {
		assert.True(t, s.StartTime.IsBefore(s.EndTime),
			"slot %s-%s must keep start < end", s.StartTime, s.EndTime)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), s.SlotDate)
	}
}

func TestCutSlots_SlotNeverStraddlesMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// Нарезка от 23:30 упёрлась бы в слот 23:30-00:30; вместо этого окно
	// режется по полуночи, неполные куски по обе стороны отбрасываются
	start := time.Date(2025, 10, 15, 23, 30, 0, 0, loc)
	end := time.Date(2025, 10, 16, 1, 30, 0, 0, loc)

	slots := cutSlots(1, start, end, time.Hour, loc)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), slots[0].SlotDate)
	assert.Equal(t, "00:00", slots[0].StartTime.String())
	assert.Equal(t, "01:00", slots[0].EndTime.String())
}
