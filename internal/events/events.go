// Package events publishes board activity to a message broker.
package events

import (
	"context"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/config"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.Event) error { return nil }

func (noopPublisher) Close() error { return nil }

// NewNoopPublisher drops every event.
func NewNoopPublisher() domain.EventPublisher { return noopPublisher{} }

// New builds the publisher selected by cfg.Broker.
func New(cfg config.Events) (domain.EventPublisher, error) {
	switch cfg.Broker {
	case config.BrokerKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.Topic), nil
	case config.BrokerRabbitMQ:
		return NewRabbitPublisher(cfg.RabbitMQURL, cfg.Topic)
	default:
		return NewNoopPublisher(), nil
	}
}
