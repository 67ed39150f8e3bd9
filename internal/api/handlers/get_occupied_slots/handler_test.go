package get_occupied_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getOccupiedSlots "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_occupied_slots"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type useCaseStub struct {
	got *getOccupiedSlots.Request
}

func (u *useCaseStub) Execute(_ context.Context, req *getOccupiedSlots.Request) (*getOccupiedSlots.Response, error) {
	u.got = req
	start := req.Date.Add(9 * time.Hour)
	return &getOccupiedSlots.Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots: []domain.OccupiedSlot{
			{Start: "09:00", End: "10:00", Booking: &domain.Booking{ID: "b-1", RoomID: req.RoomID, StartAt: start, EndAt: start.Add(time.Hour)}},
		},
	}, nil
}

func get(uc *useCaseStub, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/occupied-slots", NewHandler(uc, time.UTC, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &useCaseStub{}

	rec := get(uc, "/api/v1/rooms/room-1/occupied-slots?date=2026-10-21")
	require.Equal(t, http.StatusOK, rec.Code)

	var body OccupiedSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "room-1", body.RoomID)
	assert.Equal(t, "2026-10-21", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "09:00", body.Slots[0].Start)
	assert.Equal(t, "b-1", body.Slots[0].Booking.ID)
	assert.Equal(t, "room-1", uc.got.RoomID)
}

func TestHandle_DateValidation(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(&useCaseStub{}, "/api/v1/rooms/room-1/occupied-slots").Code)
	assert.Equal(t, http.StatusBadRequest, get(&useCaseStub{}, "/api/v1/rooms/room-1/occupied-slots?date=21-10-2026").Code)
}
