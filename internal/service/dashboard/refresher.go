package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// refreshTimeout ограничение на один пересчет показателей
const refreshTimeout = 10 * time.Second

// StatsSource источник показателей (реализуется *Service)
type StatsSource interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// Refresher периодически выгружает показатели дашборда в метрики
type Refresher struct {
	cron    *cron.Cron
	source  StatsSource
	metrics Metrics
	logger  Logger
}

// NewRefresher создает планировщик с расписанием schedule (cron, 5 полей или @every)
func NewRefresher(schedule string, source StatsSource, metrics Metrics, logger Logger) (*Refresher, error) {
	r := &Refresher{
		cron:    cron.New(),
		source:  source,
		metrics: metrics,
		logger:  logger,
	}

	if _, err := r.cron.AddFunc(schedule, r.Refresh); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}
	return r, nil
}

// Start запускает планировщик в фоне
func (r *Refresher) Start() {
	r.logger.Info("Dashboard refresher started")
	r.cron.Start()
}

// Stop останавливает планировщик и ждет завершения текущего пересчета
func (r *Refresher) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		r.logger.Warn("Dashboard refresher: stop interrupted: %v", ctx.Err())
	}
}

// Refresh пересчитывает показатели и обновляет метрики
func (r *Refresher) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	stats, err := r.source.Stats(ctx)
	if err != nil {
		r.logger.Warn("Dashboard refresher: failed to compute stats: %v", err)
		return
	}

	r.metrics.SetDashboard(stats.MeetingsToday, stats.OngoingMeetings, stats.AvailableRooms, stats.TotalRooms)
}
