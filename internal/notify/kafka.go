package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	writer messageWriter
	log    *zap.Logger
}

func NewKafkaNotifier(brokers []string, topic string, log *zap.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf(msg, args...))
		}),
	}

	return &KafkaNotifier{writer: writer, log: log}
}

// Reminder keys messages by booking id so events of one booking stay
// ordered.
func (n *KafkaNotifier) Reminder(ctx context.Context, ev ReminderEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("reminder marshal: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.BookingID),
		Value: value,
		Time:  ev.SentAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("booking.reminder")},
		},
	})
	if err != nil {
		return fmt.Errorf("reminder publish: %w", err)
	}

	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
