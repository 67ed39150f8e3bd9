package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/location"
	managerRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/manager"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type locationRepoMock struct {
	mock.Mock
}

func (m *locationRepoMock) Create(ctx context.Context, l *domain.Location) (*domain.Location, error) {
	args := m.Called(ctx, l)
	l.ID = args.String(0)
	return l, args.Error(1)
}

func (m *locationRepoMock) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *locationRepoMock) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *locationRepoMock) List(ctx context.Context, search *string) ([]*domain.Location, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*domain.Location), args.Error(1)
}

type roomRepoMock struct {
	mock.Mock
}

func (m *roomRepoMock) Create(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, r)
	r.ID = args.String(0)
	return r, args.Error(1)
}

func (m *roomRepoMock) GetByName(ctx context.Context, locationID, name string) (*domain.Room, error) {
	args := m.Called(ctx, locationID, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *roomRepoMock) List(ctx context.Context, locationID *string) ([]*domain.Room, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]*domain.Room), args.Error(1)
}

type managerRepoMock struct {
	mock.Mock
}

func (m *managerRepoMock) Create(ctx context.Context, mgr *domain.Manager) (*domain.Manager, error) {
	args := m.Called(ctx, mgr)
	mgr.ID = args.String(0)
	return mgr, args.Error(1)
}

func (m *managerRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*domain.Manager), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *managerRepoMock) List(ctx context.Context, search *string) ([]*domain.Manager, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*domain.Manager), args.Error(1)
}

type txStub struct {
	calls int
}

func (tx *txStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type fixture struct {
	locations *locationRepoMock
	rooms     *roomRepoMock
	managers  *managerRepoMock
	tx        *txStub
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		locations: &locationRepoMock{},
		rooms:     &roomRepoMock{},
		managers:  &managerRepoMock{},
		tx:        &txStub{},
	}
	f.svc = NewService(f.locations, f.rooms, f.managers, f.tx, logger.Nop())
	return f
}

func TestDefaultRoom_CreatesMissingLocationAndRoom(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, domain.DefaultLocationName).Return(nil, locationRepo.ErrLocationNotFound)
	f.locations.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Location) bool {
		return l.Name == domain.DefaultLocationName && *l.Address == domain.DefaultLocationAddress
	})).Return("loc-1", nil)
	f.rooms.On("GetByName", mock.Anything, "loc-1", domain.DefaultRoomName).Return(nil, roomRepo.ErrRoomNotFound)
	f.rooms.On("Create", mock.Anything, mock.Anything).Return("room-1", nil)

	room, err := f.svc.DefaultRoom(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, "loc-1", room.LocationID)
	assert.Equal(t, domain.DefaultLocationName, *room.LocationName)
	assert.Equal(t, 1, f.tx.calls)
}

func TestDefaultRoom_ReturnsExisting(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, domain.DefaultLocationName).Return(&domain.Location{ID: "loc-1"}, nil)
	f.rooms.On("GetByName", mock.Anything, "loc-1", domain.DefaultRoomName).Return(&domain.Room{ID: "room-7", LocationID: "loc-1"}, nil)

	room, err := f.svc.DefaultRoom(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "room-7", room.ID)
	f.rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDefaultManager(t *testing.T) {
	f := newFixture()
	f.managers.On("GetByEmail", mock.Anything, domain.DefaultManagerEmail).Return(nil, managerRepo.ErrManagerNotFound)
	f.managers.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Manager) bool {
		return m.Name == domain.DefaultManagerName && m.Email == domain.DefaultManagerEmail
	})).Return("m-1", nil)

	manager, err := f.svc.DefaultManager(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m-1", manager.ID)
}

func TestCreateRoom(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.locations.On("GetByID", mock.Anything, "loc-1").Return(&domain.Location{ID: "loc-1", Name: "HQ"}, nil)
		f.rooms.On("Create", mock.Anything, mock.Anything).Return("room-1", nil)

		resp, err := f.svc.CreateRoom(context.Background(), &models.CreateRoomRequest{
			Name:       "  Orion ",
			LocationID: "loc-1",
			Capacity:   ptr.Ptr(8),
		})
		require.NoError(t, err)

		assert.Equal(t, "Orion", resp.Name)
		assert.Equal(t, "HQ", *resp.LocationName)
	})

	t.Run("unknown location", func(t *testing.T) {
		f := newFixture()
		f.locations.On("GetByID", mock.Anything, "loc-x").Return(nil, locationRepo.ErrLocationNotFound)

		_, err := f.svc.CreateRoom(context.Background(), &models.CreateRoomRequest{Name: "Orion", LocationID: "loc-x"})
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		_, err := newFixture().svc.CreateRoom(context.Background(), &models.CreateRoomRequest{
			Name: "Orion", LocationID: "loc-1", Capacity: ptr.Ptr(0),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreateManager_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateManagerRequest
	}{
		{name: "empty name", req: models.CreateManagerRequest{Email: "a@b.c"}},
		{name: "empty email", req: models.CreateManagerRequest{Name: "Anna"}},
		{name: "email without at", req: models.CreateManagerRequest{Name: "Anna", Email: "anna.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFixture().svc.CreateManager(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateLocation(t *testing.T) {
	f := newFixture()
	f.locations.On("Create", mock.Anything, mock.Anything).Return("loc-2", nil)

	resp, err := f.svc.CreateLocation(context.Background(), &models.CreateLocationRequest{Name: "Annex"})
	require.NoError(t, err)
	assert.Equal(t, "loc-2", resp.ID)

	_, err = f.svc.CreateLocation(context.Background(), &models.CreateLocationRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListLocations_EmptySearchIsNoFilter(t *testing.T) {
	f := newFixture()
	f.locations.On("List", mock.Anything, (*string)(nil)).Return([]*domain.Location{{ID: "loc-1", Name: "HQ"}}, nil)

	resp, err := f.svc.ListLocations(context.Background(), ptr.Ptr("  "))
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "HQ", resp[0].Name)
}
