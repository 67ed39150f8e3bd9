package get_occupied_slots

import "errors"

// ErrInvalidInput возвращается при некорректных входных данных
var ErrInvalidInput = errors.New("invalid input data")
