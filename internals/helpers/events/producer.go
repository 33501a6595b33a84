package events

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// Producer publishes financial/audit events to a Kafka topic. Everything here
// is optional: without KAFKA_BROKER configured the package is a no-op.
type Producer struct {
	writer *kafka.Writer
}

var defaultProducer *Producer

// Init wires the package-level producer from the environment. Call once at
// startup after config is loaded.
func Init() {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		log.Println("[INFO] KAFKA_BROKER not set, event publishing disabled")
		return
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "campus.audit"
	}
	defaultProducer = NewProducer(broker, topic, os.Getenv("KAFKA_USERNAME"), os.Getenv("KAFKA_PASSWORD"))
	log.Printf("[INFO] event producer ready (topic=%s)", topic)
}

func NewProducer(broker, topic, username, password string) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	if username != "" {
		w.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
			TLS:  &tls.Config{},
		}
	}
	return &Producer{writer: w}
}

// Publish sends one message; nil-safe so callers never have to care whether
// Kafka is configured.
func Publish(key, value []byte) error {
	return defaultProducer.PublishMessage(key, value)
}

func (p *Producer) PublishMessage(key, value []byte) error {
	if p == nil || p.writer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}
