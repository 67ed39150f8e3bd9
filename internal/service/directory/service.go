package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	locationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/location"
	managerRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/manager"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// Service справочник локаций, комнат и менеджеров
type Service struct {
	locationRepo LocationRepository
	roomRepo     RoomRepository
	managerRepo  ManagerRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	locationRepo LocationRepository,
	roomRepo RoomRepository,
	managerRepo ManagerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		locationRepo: locationRepo,
		roomRepo:     roomRepo,
		managerRepo:  managerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Локации

// ListLocations возвращает локации, search фильтрует по подстроке имени
func (s *Service) ListLocations(ctx context.Context, search *string) ([]models.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx, normalizeSearch(search))
	if err != nil {
		s.logger.Error("ListLocations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocations(locations), nil
}

// CreateLocation создает локацию
func (s *Service) CreateLocation(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error) {
	if err := validateLocation(req); err != nil {
		s.logger.Warn("CreateLocation: validation failed: %v", err)
		return nil, err
	}

	location, err := s.locationRepo.Create(ctx, &domain.Location{
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		s.logger.Error("CreateLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateLocation: created location id=%s", location.ID)
	resp := models.FromDomainLocation(location)
	return &resp, nil
}

// DefaultLocation возвращает локацию по умолчанию, создавая ее при отсутствии
func (s *Service) DefaultLocation(ctx context.Context) (*domain.Location, error) {
	var location *domain.Location
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		location, err = s.defaultLocation(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (s *Service) defaultLocation(ctx context.Context) (*domain.Location, error) {
	location, err := s.locationRepo.GetByName(ctx, domain.DefaultLocationName)
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, locationRepo.ErrLocationNotFound) {
		s.logger.Error("DefaultLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: DefaultLocation - repository error: %v", ErrInternal, err)
	}

	location, err = s.locationRepo.Create(ctx, &domain.Location{
		Name:    domain.DefaultLocationName,
		Address: ptr.Ptr(domain.DefaultLocationAddress),
	})
	if err != nil {
		s.logger.Error("DefaultLocation: failed to create: %v", err)
		return nil, fmt.Errorf("%w: DefaultLocation - create: %v", ErrInternal, err)
	}

	s.logger.Info("DefaultLocation: created default location id=%s", location.ID)
	return location, nil
}

// Комнаты

// ListRooms возвращает комнаты, опционально только одной локации
func (s *Service) ListRooms(ctx context.Context, locationID *string) ([]models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx, normalizeSearch(locationID))
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRooms(rooms), nil
}

// CreateRoom создает комнату в существующей локации
func (s *Service) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if err := validateRoom(req); err != nil {
		s.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	location, err := s.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("CreateRoom: location id=%s not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRoom - get location: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.Create(ctx, &domain.Room{
		Name:        strings.TrimSpace(req.Name),
		LocationID:  location.ID,
		Capacity:    req.Capacity,
		Description: req.Description,
	})
	if err != nil {
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRoom - repository error: %v", ErrInternal, err)
	}
	room.LocationName = &location.Name

	s.logger.Info("CreateRoom: created room id=%s in location id=%s", room.ID, location.ID)
	resp := models.FromDomainRoom(room)
	return &resp, nil
}

// DefaultRoom возвращает комнату по умолчанию в локации по умолчанию, создавая обе при отсутствии
func (s *Service) DefaultRoom(ctx context.Context) (*domain.Room, error) {
	var room *domain.Room
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		location, err := s.defaultLocation(txCtx)
		if err != nil {
			return err
		}

		room, err = s.roomRepo.GetByName(txCtx, location.ID, domain.DefaultRoomName)
		if err == nil {
			return nil
		}
		if !errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Error("DefaultRoom: repository error: %v", err)
			return fmt.Errorf("%w: DefaultRoom - repository error: %v", ErrInternal, err)
		}

		room, err = s.roomRepo.Create(txCtx, &domain.Room{
			Name:       domain.DefaultRoomName,
			LocationID: location.ID,
		})
		if err != nil {
			s.logger.Error("DefaultRoom: failed to create: %v", err)
			return fmt.Errorf("%w: DefaultRoom - create: %v", ErrInternal, err)
		}
		room.LocationName = &location.Name

		s.logger.Info("DefaultRoom: created default room id=%s", room.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Менеджеры

// ListManagers возвращает менеджеров, search фильтрует по имени или email
func (s *Service) ListManagers(ctx context.Context, search *string) ([]models.ManagerResponse, error) {
	managers, err := s.managerRepo.List(ctx, normalizeSearch(search))
	if err != nil {
		s.logger.Error("ListManagers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListManagers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainManagers(managers), nil
}

// CreateManager создает менеджера
func (s *Service) CreateManager(ctx context.Context, req *models.CreateManagerRequest) (*models.ManagerResponse, error) {
	if err := validateManager(req); err != nil {
		s.logger.Warn("CreateManager: validation failed: %v", err)
		return nil, err
	}

	manager, err := s.managerRepo.Create(ctx, &domain.Manager{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: req.Phone,
	})
	if err != nil {
		s.logger.Error("CreateManager: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateManager - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateManager: created manager id=%s", manager.ID)
	resp := models.FromDomainManager(manager)
	return &resp, nil
}

// DefaultManager возвращает менеджера по умолчанию, создавая его при отсутствии
func (s *Service) DefaultManager(ctx context.Context) (*domain.Manager, error) {
	var manager *domain.Manager
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		manager, err = s.managerRepo.GetByEmail(txCtx, domain.DefaultManagerEmail)
		if err == nil {
			return nil
		}
		if !errors.Is(err, managerRepo.ErrManagerNotFound) {
			s.logger.Error("DefaultManager: repository error: %v", err)
			return fmt.Errorf("%w: DefaultManager - repository error: %v", ErrInternal, err)
		}

		manager, err = s.managerRepo.Create(txCtx, &domain.Manager{
			Name:  domain.DefaultManagerName,
			Email: domain.DefaultManagerEmail,
		})
		if err != nil {
			s.logger.Error("DefaultManager: failed to create: %v", err)
			return fmt.Errorf("%w: DefaultManager - create: %v", ErrInternal, err)
		}

		s.logger.Info("DefaultManager: created default manager id=%s", manager.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return manager, nil
}

// normalizeSearch превращает пустую строку в отсутствие фильтра
func normalizeSearch(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
