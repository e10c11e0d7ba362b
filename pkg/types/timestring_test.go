package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "10:00", want: "10:00"},
		{input: "00:00", want: "00:00"},
		{input: "23:59", want: "23:59"},
		{input: "9:00", want: "09:00"},
		{input: "24:00", want: "24:00"},
		{input: "24:01", wantErr: true},
		{input: "10:60", wantErr: true},
		{input: "10", wantErr: true},
		{input: "", wantErr: true},
		{input: "ten o'clock", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_EndOfDay(t *testing.T) {
	// "24:00" - эксклюзивная граница суток: валидна, больше любого времени
	require.NoError(t, EndOfDay.Validate())
	assert.True(t, TimeString("23:00").IsBefore(EndOfDay))
	assert.True(t, EndOfDay.IsAfter(TimeString("23:59")))
	assert.False(t, EndOfDay.IsBefore(EndOfDay))

	minutes, err := EndOfDay.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 24*60, minutes)

	v, err := EndOfDay.Value()
	require.NoError(t, err)
	assert.Equal(t, "24:00", v)

	var ts TimeString
	require.NoError(t, ts.Scan("24:00"))
	assert.Equal(t, EndOfDay, ts)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Переход через полночь заворачивается
	got, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)
}

func TestTimeString_Minutes(t *testing.T) {
	got, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// TIME колонка приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 7, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
