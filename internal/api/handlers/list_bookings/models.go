package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date задает один день и имеет приоритет над startDate/endDate
func ToServiceRequest(r *http.Request) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		RoomID:    handlers.QueryParam(r, "roomId"),
		ManagerID: handlers.QueryParam(r, "managerId"),
	}

	if date, err := handlers.ParseOptionalDate(handlers.QueryParam(r, "date")); err != nil {
		return nil, err
	} else if date != nil {
		req.StartDate = date
		req.EndDate = date
		return req, nil
	}

	startDate, err := handlers.ParseOptionalDate(handlers.QueryParam(r, "startDate"))
	if err != nil {
		return nil, err
	}
	endDate, err := handlers.ParseOptionalDate(handlers.QueryParam(r, "endDate"))
	if err != nil {
		return nil, err
	}
	req.StartDate = startDate
	req.EndDate = endDate

	return req, nil
}
