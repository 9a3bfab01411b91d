package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/restaurant-erp/internal/entity"
)

type Producer struct {
	l               *slog.Logger
	w               *kafka.Writer
	billEventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:               l,
		w:               w,
		billEventsTopic: topic,
	}
}

type BillEvent struct {
	Type       entity.BillEventType `json:"type"`
	BillID     string               `json:"bill_id"`
	CustomerID string               `json:"customer_id,omitempty"`
	Total      float64              `json:"total,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// SendBillEvent publishes a bill lifecycle event keyed by bill id. Errors are logged only.
func (p *Producer) SendBillEvent(ctx context.Context, eventType entity.BillEventType, bill entity.Bill) {
	event := BillEvent{
		Type:       eventType,
		BillID:     bill.ID,
		CustomerID: bill.CustomerID,
		Total:      bill.Total,
		OccurredAt: time.Now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(bill.ID),
		Value: b,
		Topic: p.billEventsTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
