package dashboard

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")

	// ErrInvalidSchedule возвращается при некорректном cron выражении
	ErrInvalidSchedule = errors.New("dashboard: invalid refresh schedule")
)
