package utils

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// ======================
// Kafka (async registration confirmations)
// ======================
var (
	kafkaWriter  *kafka.Writer
	kafkaBrokers []string
)

// InitializeKafka sets up the producer. Kafka is optional: when no
// brokers are configured, publishing is skipped and callers fall back
// to direct delivery.
func InitializeKafka(brokers []string, topic string) {
	if len(brokers) == 0 {
		log.Println("ℹ️ KAFKA_BROKERS not set. Confirmations will be sent inline.")
		return
	}

	kafkaBrokers = brokers
	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	log.Printf("✅ Kafka producer ready (brokers: %v, topic: %s)", brokers, topic)
}

func IsKafkaEnabled() bool {
	return kafkaWriter != nil
}

func KafkaBrokers() []string {
	return kafkaBrokers
}

// PublishMessage writes one message to the configured topic.
func PublishMessage(ctx context.Context, key string, value []byte) error {
	if kafkaWriter == nil {
		return nil
	}
	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func CloseKafka() {
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			log.Printf("⚠️ Error closing Kafka writer: %v", err)
		}
	}
}
