package bookingclient

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingclient: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingclient: invalid response")

	// ErrInvalidRequest возвращается, когда сервис отклонил запрос (400)
	ErrInvalidRequest = errors.New("bookingclient: request rejected")
)
