package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Типы событий бронирований
const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingDeleted = "booking.deleted"
)

// ErrPublish возвращается при ошибке публикации события
var ErrPublish = errors.New("events: failed to publish")

// BookingEvent событие изменения бронирования
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"bookingId"`
	RoomID     string    `json:"roomId"`
	ManagerID  string    `json:"managerId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent создает событие по бронированию
func NewBookingEvent(eventType string, b *domain.Booking, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		ManagerID:  b.ManagerID,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		OccurredAt: occurredAt,
	}
}

// MessageWriter интерфейс писателя сообщений (реализуется *kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события бронирований в Kafka
// Ключ сообщения - ID комнаты, поэтому события одной комнаты попадают в одну партицию по порядку
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaWriter создает *kafka.Writer для топика
func NewKafkaWriter(brokers []string, topic string, writeTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaPublisher создает издателя поверх writer
func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish отправляет событие
func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.RoomID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "booking_id", Value: []byte(event.BookingID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s booking=%s: %v", ErrPublish, event.Type, event.BookingID, err)
	}
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher издатель для выключенных событий
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, BookingEvent) error {
	return nil
}

// Close ничего не делает
func (NoopPublisher) Close() error {
	return nil
}
