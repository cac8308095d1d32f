package publisher

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks -mock_names=Resource=MockPublisherResource

import (
	"context"

	"catalog/config"
	"catalog/infras/kafka"
	"catalog/infras/otel"
	"catalog/internal/domains/resource/model/dto"
	"catalog/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	KeyResourceCreated = "resource.created"
	KeyResourceUpdated = "resource.updated"
	KeyResourceDeleted = "resource.deleted"
)

// Resource emits resource lifecycle events. Delivery is best effort:
// a failed publish is logged and swallowed, never surfaced to the caller,
// since the database write it follows has already committed.
type Resource interface {
	ResourceCreated(ctx context.Context, resource dto.ResourceResponse)
	ResourceUpdated(ctx context.Context, resource dto.ResourceResponse)
	ResourceDeleted(ctx context.Context, id int64)
}

type deletedPayload struct {
	ID int64 `json:"id"`
}

type publisherImpl struct {
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Resource {
	return &publisherImpl{
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (p *publisherImpl) ResourceCreated(ctx context.Context, resource dto.ResourceResponse) {
	p.publish(ctx, KeyResourceCreated, resource)
}

func (p *publisherImpl) ResourceUpdated(ctx context.Context, resource dto.ResourceResponse) {
	p.publish(ctx, KeyResourceUpdated, resource)
}

func (p *publisherImpl) ResourceDeleted(ctx context.Context, id int64) {
	p.publish(ctx, KeyResourceDeleted, deletedPayload{ID: id})
}

func (p *publisherImpl) publish(ctx context.Context, key string, payload any) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	scope.SetAttribute("event.key", key)

	topic := p.cfg.Kafka.Topic.ResourceEvents

	err := p.kafka.SendMessages(ctx, topic, kafka.Message{
		Key:   key,
		Value: payload,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish resource event")

		return
	}

	log.Info().Str("topic", topic).Str("key", key).Msg("published resource event")
}
