package bookingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом бронирования комнат
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Check проверяет доступность интервала и возвращает ошибку при любом сбое
func (c *Client) Check(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/availability/check", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var result AvailabilityResult
	if err := c.do(httpReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckAvailability проверяет доступность с graceful degradation
// Неполный запрос считается доступным, при недоступности сервиса возвращается разрешающий результат с Degraded=true.
// Отклоненный сервисом запрос (400) не деградирует: возвращается Available=false, Invalid=true
func (c *Client) CheckAvailability(ctx context.Context, req AvailabilityRequest) *AvailabilityResult {
	if !req.IsComplete() {
		return permissive(false)
	}

	result, err := c.Check(ctx, req)
	if errors.Is(err, ErrInvalidRequest) {
		c.log.Warn("Availability check rejected for room=%s date=%s: %v", req.RoomID, req.Date, err)
		return rejected(err.Error())
	}
	if err != nil {
		c.log.Error("Availability check failed, applying graceful degradation for room=%s date=%s: %v", req.RoomID, req.Date, err)
		return permissive(true)
	}
	return result
}

// GetOccupiedSlots возвращает занятые интервалы комнаты за день и ошибку при любом сбое
func (c *Client) GetOccupiedSlots(ctx context.Context, roomID, date string) ([]OccupiedSlot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/rooms/%s/occupied-slots?date=%s", c.baseURL, url.PathEscape(roomID), url.QueryEscape(date))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	var resp occupiedSlotsResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if resp.Slots == nil {
		return []OccupiedSlot{}, nil
	}
	return resp.Slots, nil
}

// OccupiedSlots возвращает занятые интервалы, при любой ошибке пустой список
func (c *Client) OccupiedSlots(ctx context.Context, roomID, date string) []OccupiedSlot {
	if roomID == "" || date == "" {
		return []OccupiedSlot{}
	}

	slots, err := c.GetOccupiedSlots(ctx, roomID, date)
	if err != nil {
		c.log.Warn("Occupied slots unavailable for room=%s date=%s: %v", roomID, date, err)
		return []OccupiedSlot{}
	}
	return slots
}

func (c *Client) do(req *http.Request, dst interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%w: %s", ErrInvalidRequest, errResp.Error)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
