package publisher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"catalog/config"
	"catalog/infras/kafka"
	kafkaMocks "catalog/infras/kafka/mocks"
	"catalog/infras/otel/mocks"
	"catalog/internal/domains/resource/model/dto"
	"catalog/internal/domains/resource/publisher"
)

func newPublisher(t *testing.T) (publisher.Resource, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topic.ResourceEvents = "resource.events"

	mockClient := kafkaMocks.NewMockClient(ctrl)

	return publisher.New(cfg, mockClient, mocks.NewOtel()), mockClient
}

func TestPublisher_ResourceCreated(t *testing.T) {
	pub, mockClient := newPublisher(t)

	resource := dto.ResourceResponse{ID: 42, Name: "Reading Room A"}

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "resource.events", kafka.Message{
			Key:   publisher.KeyResourceCreated,
			Value: resource,
		}).
		Return(nil)

	pub.ResourceCreated(context.Background(), resource)
}

func TestPublisher_ResourceUpdated(t *testing.T) {
	pub, mockClient := newPublisher(t)

	resource := dto.ResourceResponse{ID: 42, Name: "Reading Room B"}

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "resource.events", kafka.Message{
			Key:   publisher.KeyResourceUpdated,
			Value: resource,
		}).
		Return(nil)

	pub.ResourceUpdated(context.Background(), resource)
}

func TestPublisher_ResourceDeleted(t *testing.T) {
	pub, mockClient := newPublisher(t)

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "resource.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, publisher.KeyResourceDeleted, messages[0].Key)

			return nil
		})

	pub.ResourceDeleted(context.Background(), 42)
}

func TestPublisher_FailureIsSwallowed(t *testing.T) {
	pub, mockClient := newPublisher(t)

	mockClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	assert.NotPanics(t, func() {
		pub.ResourceCreated(context.Background(), dto.ResourceResponse{ID: 42})
	})
}
