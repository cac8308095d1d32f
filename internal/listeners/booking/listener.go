package booking

import (
	"context"

	"catalog/config"
	"catalog/infras/kafka"
	"catalog/infras/otel"
	"catalog/internal/domains/resource/model"
	"catalog/internal/domains/resource/service"
	"catalog/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	KeyBookingCreated  = "booking.created"
	KeyBookingCanceled = "booking.canceled"
)

// BookingEvent is the inbound payload shared by booking lifecycle events.
// Only the resource reference matters here; events without one are ignored.
type BookingEvent struct {
	BookingID  int64  `json:"booking_id"`
	ResourceID *int64 `json:"resource_id"`
	UserID     string `json:"user_id,omitempty"`
}

// Listener consumes booking lifecycle events and flips resource
// availability. Every handling error is logged and swallowed, so a message
// is always considered handled and never redelivered.
type Listener struct {
	cfg     *config.Config
	kafka   kafka.Client
	service service.Resource
	otel    otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, svc service.Resource, otel otel.Otel) *Listener {
	return &Listener{
		cfg:     cfg,
		kafka:   kafkaClient,
		service: svc,
		otel:    otel,
	}
}

// Listen blocks consuming the booking events topic until ctx is done.
func (l *Listener) Listen(ctx context.Context) {
	l.kafka.Consume(ctx, l.cfg.Kafka.ConsumerGroup, l.cfg.Kafka.Topic.BookingEvents, l.HandleMessage)
}

func (l *Listener) HandleMessage(msg kafkaGo.Message) {
	ctx, scope := l.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleMessage")
	defer scope.End()

	key := string(msg.Key)
	scope.SetAttribute("event.key", key)

	event, err := kafka.DecodeKafkaMessage[BookingEvent](msg)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to decode booking event")

		return
	}

	switch key {
	case KeyBookingCreated:
		l.setResourceStatus(ctx, event, model.StatusUnavailable, key)
	case KeyBookingCanceled:
		l.setResourceStatus(ctx, event, model.StatusAvailable, key)
	default:
		log.Warn().Str("key", key).Msg("ignoring booking event with unknown key")
	}
}

func (l *Listener) setResourceStatus(ctx context.Context, event BookingEvent, status, key string) {
	if event.ResourceID == nil {
		log.Warn().Str("key", key).Msg("booking event has no resource reference, skipping")

		return
	}

	if err := l.service.SetStatus(ctx, *event.ResourceID, status); err != nil {
		log.Error().Err(err).Str("key", key).Int64("resourceID", *event.ResourceID).Msg("failed to process booking event")

		return
	}

	log.Info().Str("key", key).Int64("resourceID", *event.ResourceID).Str("status", status).Msg("updated resource status from booking event")
}
