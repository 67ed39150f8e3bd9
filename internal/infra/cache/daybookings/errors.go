package daybookings

import "errors"

// ErrInvalidate возвращается, когда ключи кэша не удалось удалить
var ErrInvalidate = errors.New("daybookings.cache: failed to invalidate")
