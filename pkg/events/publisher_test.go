package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Drivers(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, p)
	assert.NoError(t, p.PublishEvent(context.Background(), TopicOrders, "1", map[string]any{"type": "order_created"}))
	assert.NoError(t, p.Close())

	kp, err := New(Options{Driver: "kafka", KafkaBrokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, kp)
	assert.NoError(t, kp.Close())

	_, err = New(Options{Driver: "kafka"})
	assert.Error(t, err)

	_, err = New(Options{Driver: "rabbitmq"})
	assert.Error(t, err)

	_, err = New(Options{Driver: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestKafkaPublisher_RejectsUnencodableEvent(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"})
	defer p.Close()

	err := p.PublishEvent(context.Background(), TopicOrders, "1", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json.Marshal")
}

func TestKafkaPublisher_DeliveryIsBounded(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"})
	defer p.Close()

	assert.Equal(t, kafkaBatchTimeout, p.writer.BatchTimeout)
	assert.Equal(t, kafkaDeliveryTimeout, p.writer.WriteTimeout)
	assert.Less(t, p.writer.BatchTimeout, time.Second)
}
