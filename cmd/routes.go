package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	checkAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getDashboardStatsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_dashboard_stats"
	getOccupiedSlotsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_occupied_slots"
	listBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_bookings"
	locationsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/locations"
	managersHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/managers"
	roomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/rooms"
	updateBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-RoomBookingService/internal/service/dashboard"
	directoryService "github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getOccupiedSlotsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_occupied_slots"
	updateBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
)

type routerDeps struct {
	cfg      *config.Config
	location *time.Location
	metrics  *metrics.Metrics
	logger   *logger.Logger

	directory *directoryService.Service
	bookings  *bookingsService.Service
	dashboard *dashboardService.Service

	createBooking     *createBookingUC.UseCase
	updateBooking     *updateBookingUC.UseCase
	checkAvailability *checkAvailabilityUC.UseCase
	getOccupiedSlots  *getOccupiedSlotsUC.UseCase
}

func newRouter(d routerDeps) *mux.Router {
	log := d.logger

	// Handlers
	locations := locationsHandler.NewHandler(d.directory, log)
	rooms := roomsHandler.NewHandler(d.directory, log)
	managers := managersHandler.NewHandler(d.directory, log)
	createBooking := createBookingHandler.NewHandler(d.createBooking, d.location, log)
	updateBooking := updateBookingHandler.NewHandler(d.updateBooking, d.location, log)
	getBooking := getBookingHandler.NewHandler(d.bookings, log)
	deleteBooking := deleteBookingHandler.NewHandler(d.bookings, log)
	listBookings := listBookingsHandler.NewHandler(d.bookings, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(d.checkAvailability, d.location, log)
	getOccupiedSlots := getOccupiedSlotsHandler.NewHandler(d.getOccupiedSlots, d.location, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(d.dashboard, log)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if d.cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(d.metrics))
		r.Handle(d.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", d.cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Справочники ---
	api.HandleFunc("/locations", locations.List).Methods(http.MethodGet)
	api.HandleFunc("/locations", locations.Create).Methods(http.MethodPost)
	api.HandleFunc("/locations/default", locations.Default).Methods(http.MethodPost)

	api.HandleFunc("/rooms", rooms.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms", rooms.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/default", rooms.Default).Methods(http.MethodPost)

	api.HandleFunc("/managers", managers.List).Methods(http.MethodGet)
	api.HandleFunc("/managers", managers.Create).Methods(http.MethodPost)
	api.HandleFunc("/managers/default", managers.Default).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Доступность ---
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}/occupied-slots", getOccupiedSlots.Handle).Methods(http.MethodGet)

	// --- Дашборд ---
	api.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	return r
}
