package get_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfly/TurfBookingService/internal/service/slots/models"
)

type fakeSlotService struct {
	gotReq *models.ListSlotsRequest
	slots  []models.SlotResponse
	err    error
}

func (f *fakeSlotService) List(_ context.Context, req *models.ListSlotsRequest) ([]models.SlotResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc SlotService, query string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots"+query, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsBareArray(t *testing.T) {
	svc := &fakeSlotService{
		slots: []models.SlotResponse{
			{ID: 1, VenueID: 42, Date: "2025-10-15", StartTime: "10:00", EndTime: "11:00"},
			{ID: 2, VenueID: 42, Date: "2025-10-15", StartTime: "11:00", EndTime: "12:00", IsBooked: true},
		},
	}

	rec := doRequest(t, svc, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	// Контракт: голый JSON массив, без объекта-обёртки
	body := strings.TrimSpace(rec.Body.String())
	assert.True(t, strings.HasPrefix(body, "["), "expected bare array, got: %s", body)

	var slots []models.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 2)
	assert.Equal(t, int64(1), slots[0].ID)
	assert.True(t, slots[1].IsBooked)
}

func TestHandle_EmptyResultIsEmptyArray(t *testing.T) {
	rec := doRequest(t, &fakeSlotService{slots: []models.SlotResponse{}}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandle_FiltersPassedToService(t *testing.T) {
	svc := &fakeSlotService{slots: []models.SlotResponse{}}

	rec := doRequest(t, svc, "?venueId=42&date=2025-10-15&isBooked=false")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	require.NotNil(t, svc.gotReq.VenueID)
	assert.Equal(t, int64(42), *svc.gotReq.VenueID)
	require.NotNil(t, svc.gotReq.Date)
	assert.Equal(t, "2025-10-15", svc.gotReq.Date.Format("2006-01-02"))
	require.NotNil(t, svc.gotReq.IsBooked)
	assert.False(t, *svc.gotReq.IsBooked)
}

func TestHandle_InvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "bad venue id", query: "?venueId=abc"},
		{name: "negative venue id", query: "?venueId=-1"},
		{name: "bad date", query: "?date=15-10-2025"},
		{name: "bad isBooked", query: "?isBooked=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeSlotService{}, tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
