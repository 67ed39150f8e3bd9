package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ParseDate парсит дату формата YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// ParseOptionalDate парсит дату, пустая строка означает nil
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	date, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// ParseOptionalTime парсит время HH:MM, nil остается nil
func ParseOptionalTime(value *string) (*types.TimeString, error) {
	if value == nil {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// QueryParam возвращает непустой query параметр или nil
func QueryParam(r *http.Request, name string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil
	}
	return &value
}
