package bookingclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.Nop())
}

func TestCheckAvailability_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/availability/check", r.URL.Path)

		var req AvailabilityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "room-1", req.RoomID)
		assert.Equal(t, "b-7", req.ExcludeBookingID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"available": false,
			"conflictingBookings": [{"id": "b-1", "roomId": "room-1", "startTime": "09:00", "endTime": "10:00"}],
			"suggestedSlots": [{"startTime": "08:00", "endTime": "09:00", "available": true}]
		}`))
	})

	result := client.CheckAvailability(context.Background(), AvailabilityRequest{
		RoomID:           "room-1",
		Date:             "2026-10-21",
		StartTime:        "09:30",
		EndTime:          "10:30",
		ExcludeBookingID: "b-7",
	})

	assert.False(t, result.Available)
	assert.False(t, result.Degraded)
	require.Len(t, result.ConflictingBookings, 1)
	assert.Equal(t, "b-1", result.ConflictingBookings[0].ID)
	require.Len(t, result.SuggestedSlots, 1)
	assert.Equal(t, "08:00", result.SuggestedSlots[0].StartTime)
}

func TestCheckAvailability_IncompleteSkipsRequest(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result := client.CheckAvailability(context.Background(), AvailabilityRequest{RoomID: "room-1", Date: "2026-10-21"})

	assert.True(t, result.Available)
	assert.False(t, result.Degraded)
	assert.False(t, called)
}

func TestCheckAvailability_FailOpen(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := AvailabilityRequest{RoomID: "room-1", Date: "2026-10-21", StartTime: "09:00", EndTime: "10:00"}

	_, err := client.Check(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	result := client.CheckAvailability(context.Background(), req)
	assert.True(t, result.Available)
	assert.True(t, result.Degraded)
	assert.Empty(t, result.ConflictingBookings)
}

func TestCheck_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "время окончания должно быть позже времени начала"}`))
	})

	_, err := client.Check(context.Background(), AvailabilityRequest{RoomID: "room-1", Date: "2026-10-21", StartTime: "10:00", EndTime: "09:00"})
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestCheckAvailability_BadRequestIsNotPermissive(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "время окончания должно быть позже времени начала"}`))
	})

	result := client.CheckAvailability(context.Background(), AvailabilityRequest{RoomID: "room-1", Date: "2026-10-21", StartTime: "10:00", EndTime: "09:00"})
	require.NotNil(t, result)
	assert.Equal(t, 1, calls)
	assert.False(t, result.Available)
	assert.False(t, result.Degraded)
	assert.True(t, result.Invalid)
	assert.Contains(t, result.Message, "время окончания должно быть позже времени начала")
	assert.Empty(t, result.ConflictingBookings)
	assert.Empty(t, result.SuggestedSlots)
}

func TestOccupiedSlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rooms/room-1/occupied-slots", r.URL.Path)
		assert.Equal(t, "2026-10-21", r.URL.Query().Get("date"))

		_, _ = w.Write([]byte(`{"roomId": "room-1", "date": "2026-10-21", "slots": [
			{"start": "09:00", "end": "10:00", "booking": {"id": "b-1"}}
		]}`))
	})

	slots := client.OccupiedSlots(context.Background(), "room-1", "2026-10-21")
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "b-1", slots[0].Booking.ID)
}

func TestOccupiedSlots_EmptyOnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	slots := client.OccupiedSlots(context.Background(), "room-1", "2026-10-21")
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}
