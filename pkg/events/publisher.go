package events

import (
	"context"
	"fmt"
)

const (
	TopicProducts = "product_events"
	TopicCarts    = "cart_events"
	TopicOrders   = "order_events"
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
	Close() error
}

type Options struct {
	Driver       string
	KafkaBrokers []string
	RabbitMQURL  string
}

func New(opts Options) (Publisher, error) {
	switch opts.Driver {
	case "", "none":
		return Nop{}, nil
	case "kafka":
		if len(opts.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("events: kafka driver needs brokers")
		}
		return NewKafkaPublisher(opts.KafkaBrokers), nil
	case "rabbitmq":
		return NewRabbitPublisher(opts.RabbitMQURL)
	default:
		return nil, fmt.Errorf("events: unknown driver %q", opts.Driver)
	}
}

type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }
func (Nop) Close() error                                           { return nil }
