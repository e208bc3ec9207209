package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"hotelier/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

type Producer interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
}

type producerImpl struct {
	config *config.Config
	writer *kafkaGo.Writer
}

func New(config *config.Config) Producer {
	var mechanism sasl.Mechanism
	if config.Event.Kafka.SASL.Enable {
		mechanism = plain.Mechanism{
			Username: config.Event.Kafka.SASL.Username,
			Password: config.Event.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(config.Event.Kafka.Brokers...),
		Balancer: &kafkaGo.LeastBytes{},
		Transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
		AllowAutoTopicCreation: true,
	}

	return &producerImpl{
		config: config,
		writer: writer,
	}
}

func (p *producerImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	kafkaMessages := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		kafkaMessage, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		kafkaMessage.Topic = topic
		kafkaMessages = append(kafkaMessages, kafkaMessage)
	}

	if err := p.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to write messages to Kafka")

		return fmt.Errorf("failed to write messages to kafka: %w", err)
	}

	return nil
}
