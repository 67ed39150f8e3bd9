package locations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type serviceStub struct {
	search    *string
	createErr error
}

func (s *serviceStub) ListLocations(_ context.Context, search *string) ([]models.LocationResponse, error) {
	s.search = search
	return []models.LocationResponse{}, nil
}

func (s *serviceStub) CreateLocation(_ context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.LocationResponse{ID: "loc-1", Name: req.Name}, nil
}

func (s *serviceStub) DefaultLocation(context.Context) (*domain.Location, error) {
	return &domain.Location{ID: "loc-0", Name: domain.DefaultLocationName}, nil
}

func TestList_NoSearchReturnsEmptyArray(t *testing.T) {
	svc := &serviceStub{}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.search)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", strings.NewReader(`{"name":"HQ"}`))
	NewHandler(&serviceStub{}, logger.Nop()).Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"HQ"`)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/locations", strings.NewReader(`{"name":""}`))
	NewHandler(&serviceStub{createErr: directory.ErrInvalidInput}, logger.Nop()).Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDefault(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&serviceStub{}, logger.Nop()).Default(rec, httptest.NewRequest(http.MethodPost, "/api/v1/locations/default", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Default Location"`)
}
