package create_booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/turfly/TurfBookingService/internal/integrations/accountservice"
	"github.com/turfly/TurfBookingService/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	mutate := func(fn func(r *Request)) *Request {
		r := validRequest()
		fn(r)
		return r
	}

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{
			name: "valid request",
			req:  validRequest(),
			want: nil,
		},
		{
			name: "window ending at end of day",
			req:  mutate(func(r *Request) { r.StartTime = "23:00"; r.EndTime = types.EndOfDay }),
			want: nil,
		},
		{
			name: "end of day as start",
			req:  mutate(func(r *Request) { r.StartTime = types.EndOfDay }),
			want: ErrInvalidInput,
		},
		{
			name: "missing customer",
			req:  mutate(func(r *Request) { r.CustomerID = 0 }),
			want: ErrMissingField,
		},
		{
			name: "missing venue",
			req:  mutate(func(r *Request) { r.VenueID = 0 }),
			want: ErrMissingField,
		},
		{
			name: "missing date",
			req:  mutate(func(r *Request) { r.Date = time.Time{} }),
			want: ErrMissingField,
		},
		{
			name: "missing start time",
			req:  mutate(func(r *Request) { r.StartTime = "" }),
			want: ErrMissingField,
		},
		{
			name: "missing end time",
			req:  mutate(func(r *Request) { r.EndTime = "" }),
			want: ErrMissingField,
		},
		{
			name: "missing sport",
			req:  mutate(func(r *Request) { r.Sport = "" }),
			want: ErrMissingField,
		},
		{
			name: "missing amount",
			req:  mutate(func(r *Request) { r.Amount = decimal.Zero }),
			want: ErrMissingField,
		},
		{
			name: "malformed start time",
			req:  mutate(func(r *Request) { r.StartTime = types.TimeString("25:00") }),
			want: ErrInvalidInput,
		},
		{
			name: "start not before end",
			req:  mutate(func(r *Request) { r.StartTime = "11:00"; r.EndTime = "10:00" }),
			want: ErrInvalidInput,
		},
		{
			name: "zero length window",
			req:  mutate(func(r *Request) { r.EndTime = r.StartTime }),
			want: ErrInvalidInput,
		},
		{
			name: "negative amount",
			req:  mutate(func(r *Request) { r.Amount = decimal.NewFromInt(-100) }),
			want: ErrInvalidInput,
		},
		{
			name: "unknown sport",
			req:  mutate(func(r *Request) { r.Sport = "Chess" }),
			want: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidateSportOffered(t *testing.T) {
	venue := &accountservice.Venue{
		ID:     42,
		Sports: []string{"Football", "Tennis"},
	}

	assert.NoError(t, validateSportOffered(venue, "Football"))
	assert.NoError(t, validateSportOffered(venue, "Tennis"))
	assert.ErrorIs(t, validateSportOffered(venue, "Cricket"), ErrSportNotOffered)
	assert.ErrorIs(t, validateSportOffered(&accountservice.Venue{}, "Football"), ErrSportNotOffered)
}
