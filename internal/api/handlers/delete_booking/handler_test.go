package delete_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type serviceStub struct {
	deleted string
	err     error
}

func (s *serviceStub) Delete(_ context.Context, id string) error {
	s.deleted = id
	return s.err
}

func serve(svc *serviceStub) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/b-9", nil))
	return rec
}

func TestHandle_NoContent(t *testing.T) {
	svc := &serviceStub{}
	rec := serve(svc)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "b-9", svc.deleted)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&serviceStub{err: bookings.ErrBookingNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&serviceStub{err: bookings.ErrInternal}).Code)
}
