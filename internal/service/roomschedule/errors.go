package roomschedule

import "errors"

// ErrLoad возвращается, когда бронирования комнаты за день не удалось получить
var ErrLoad = errors.New("roomschedule: failed to load bookings")
