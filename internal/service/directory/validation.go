package directory

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

func validateName(field, name string, maxLength int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(name) > maxLength {
		return fmt.Errorf("%w: %s is too long (max %d)", ErrInvalidInput, field, maxLength)
	}
	return nil
}

func validateLocation(req *models.CreateLocationRequest) error {
	return validateName("location name", req.Name, domain.MaxLocationNameLength)
}

func validateRoom(req *models.CreateRoomRequest) error {
	if err := validateName("room name", req.Name, domain.MaxRoomNameLength); err != nil {
		return err
	}
	if strings.TrimSpace(req.LocationID) == "" {
		return fmt.Errorf("%w: location id is required", ErrInvalidInput)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}

func validateManager(req *models.CreateManagerRequest) error {
	if err := validateName("manager name", req.Name, domain.MaxManagerNameLength); err != nil {
		return err
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email must contain @", ErrInvalidInput)
	}
	return nil
}
