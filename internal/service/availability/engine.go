package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var (
	workStartMinutes = mustMinutes(domain.WorkingHoursStart)
	workEndMinutes   = mustMinutes(domain.WorkingHoursEnd)
)

// Engine проверяет пересечения бронирований и подбирает альтернативные слоты
// Не хранит состояния, не читает часы и не выполняет I/O, поэтому безопасен для конкурентного использования
type Engine struct {
	location *time.Location
}

// NewEngine создает движок. Время суток интерпретируется в локации loc (nil = UTC)
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{location: loc}
}

// Location возвращает локацию, в которой движок интерпретирует время суток
func (e *Engine) Location() *time.Location {
	return e.location
}

// CheckAvailability проверяет запрос против бронирований комнаты за день
//
// Неполный запрос считается доступным (пустые списки).
// Бронирование ExcludeBookingID не участвует в проверке.
// Конфликтующие бронирования возвращаются в порядке входного списка,
// предложения формируются только при наличии конфликта.
func (e *Engine) CheckAvailability(req domain.AvailabilityRequest, bookings []*domain.Booking) (*domain.AvailabilityResult, error) {
	if !req.IsComplete() {
		return domain.NewAvailableResult(), nil
	}

	if _, err := NewTimeInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	requestedStart, err := req.StartTime.OnDate(req.Date, e.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	requestedEnd, err := req.EndTime.OnDate(req.Date, e.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	relevant := excludeBooking(bookings, req.ExcludeBookingID)

	conflicts := make([]*domain.Booking, 0)
	for _, b := range relevant {
		if b.Overlaps(requestedStart, requestedEnd) {
			conflicts = append(conflicts, b)
		}
	}

	result := &domain.AvailabilityResult{
		Available:           len(conflicts) == 0,
		ConflictingBookings: conflicts,
		SuggestedSlots:      []domain.SuggestedSlot{},
	}
	if result.Available {
		return result, nil
	}

	suggestions, err := e.GenerateSuggestedSlots(relevant, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	result.SuggestedSlots = suggestions

	return result, nil
}

// GenerateSuggestedSlots подбирает свободные слоты той же длительности в пределах рабочего дня
//
// Занятые интервалы обходятся по возрастанию начала, окна между ними сканируются
// с шагом SuggestionStepMinutes: не более MaxSuggestionsPerGap из окна перед бронированием,
// хвост дня заполняется до MaxSuggestions. Если слотов нет, возвращается одно
// резервное предложение с исходным временем "на завтра" (завтрашний день не проверяется).
func (e *Engine) GenerateSuggestedSlots(bookings []*domain.Booking, date time.Time, start, end types.TimeString) ([]domain.SuggestedSlot, error) {
	requested, err := NewTimeInterval(start, end)
	if err != nil {
		return nil, err
	}
	duration := requested.Duration()

	occupied := make([]TimeInterval, 0, len(bookings))
	for _, b := range bookings {
		occupied = append(occupied, bookingInterval(b, date, e.location))
	}
	sort.SliceStable(occupied, func(i, j int) bool {
		return occupied[i].Start < occupied[j].Start
	})

	slots := make([]domain.SuggestedSlot, 0, domain.MaxSuggestions)
	cursor := workStartMinutes

	for _, busy := range occupied {
		perGap := 0
		for slotStart := cursor; slotStart+duration <= busy.Start && slotStart+duration <= workEndMinutes; slotStart += domain.SuggestionStepMinutes {
			if perGap >= domain.MaxSuggestionsPerGap || len(slots) >= domain.MaxSuggestions {
				break
			}
			slots = append(slots, newSlot(slotStart, duration))
			perGap++
		}
		if busy.End > cursor {
			cursor = busy.End
		}
	}

	for slotStart := cursor; slotStart+duration <= workEndMinutes && len(slots) < domain.MaxSuggestions; slotStart += domain.SuggestionStepMinutes {
		slots = append(slots, newSlot(slotStart, duration))
	}

	if len(slots) == 0 {
		y, m, d := date.Date()
		tomorrow := time.Date(y, m, d+1, 0, 0, 0, 0, e.location)
		slots = append(slots, domain.SuggestedSlot{
			StartTime: start,
			EndTime:   end,
			Available: true,
			Reason:    ptr.Ptr(fmt.Sprintf("available tomorrow (%s)", tomorrow.Format(domain.DateFormat))),
		})
	}

	return slots, nil
}

// OccupiedSlots проецирует бронирования на пары "HH:MM" для визуализации (порядок сохраняется)
func (e *Engine) OccupiedSlots(bookings []*domain.Booking) []domain.OccupiedSlot {
	result := make([]domain.OccupiedSlot, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, domain.OccupiedSlot{
			Start:   types.NewTimeString(b.StartAt.In(e.location)),
			End:     types.NewTimeString(b.EndAt.In(e.location)),
			Booking: b,
		})
	}
	return result
}

func excludeBooking(bookings []*domain.Booking, id string) []*domain.Booking {
	if id == "" {
		return bookings
	}
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

func newSlot(startMinutes, duration int) domain.SuggestedSlot {
	return domain.SuggestedSlot{
		StartTime: formatMinutes(startMinutes),
		EndTime:   formatMinutes(startMinutes + duration),
		Available: true,
	}
}

func mustMinutes(t types.TimeString) int {
	minutes, err := t.Minutes()
	if err != nil {
		panic(err)
	}
	return minutes
}
