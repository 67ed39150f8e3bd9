package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// TimeInterval интервал внутри суток в минутах от полуночи [Start, End)
type TimeInterval struct {
	Start int
	End   int
}

// NewTimeInterval строит интервал из пары "HH:MM"
// Возвращает ErrInvalidTime для некорректного формата и ErrInvalidTimeRange, если end <= start
func NewTimeInterval(start, end types.TimeString) (TimeInterval, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: start: %v", ErrInvalidTime, err)
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: end: %v", ErrInvalidTime, err)
	}
	if endMinutes <= startMinutes {
		return TimeInterval{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return TimeInterval{Start: startMinutes, End: endMinutes}, nil
}

// Duration длительность интервала в минутах
func (i TimeInterval) Duration() int {
	return i.End - i.Start
}

// Overlaps возвращает true при строгом пересечении
// Интервалы, касающиеся границами, не пересекаются
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start < other.End && i.End > other.Start
}

// bookingInterval проецирует бронирование на сутки day в локации loc
// Части бронирования за пределами суток обрезаются
func bookingInterval(b *domain.Booking, day time.Time, loc *time.Location) TimeInterval {
	y, m, d := day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)

	return TimeInterval{
		Start: clampMinutes(b.StartAt.In(loc).Sub(dayStart)),
		End:   clampMinutes(b.EndAt.In(loc).Sub(dayStart)),
	}
}

func clampMinutes(offset time.Duration) int {
	minutes := int(offset / time.Minute)
	if minutes < 0 {
		return 0
	}
	if minutes > types.MinutesPerDay {
		return types.MinutesPerDay
	}
	return minutes
}

// formatMinutes форматирует минуты от полуночи как "HH:MM" (24:00 допускается для конца суток)
func formatMinutes(minutes int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}
