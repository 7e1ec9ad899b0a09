package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Publisher асинхронно отправляет события в Kafka.
// Ошибки доставки только логируются: публикация не влияет на результат действия.
type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
	metrics  Metrics
	log      Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPublisher создает продюсер Kafka
func NewPublisher(cfg Config, metrics Metrics, log Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, ErrInvalidConfig
	}

	version, err := sarama.ParseKafkaVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: version %q: %v", ErrInvalidConfig, cfg.Version, err)
	}

	producer, err := sarama.NewAsyncProducer(cfg.Brokers, saramaConfig(version))
	if err != nil {
		return nil, fmt.Errorf("events: failed to create kafka producer: %w", err)
	}

	return newPublisher(producer, cfg.Topic, metrics, log), nil
}

func newPublisher(producer sarama.AsyncProducer, topic string, metrics Metrics, log Logger) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		metrics:  metrics,
		log:      log,
	}

	p.wg.Add(1)
	go p.drainErrors()

	return p
}

// Publish ставит событие в очередь продюсера.
// Ключ сообщения: ID пользователя, события одного пользователя идут по порядку.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("Event-Type"), Value: []byte(event.Type)},
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	select {
	case p.producer.Input() <- msg:
		if p.metrics != nil {
			p.metrics.IncEventPublished(string(event.Type))
		}
		return nil
	case <-ctx.Done():
		p.log.Warn("Publish: context cancelled before sending event type=%s user=%s: %v", event.Type, event.UserID, ctx.Err())
		return ctx.Err()
	}
}

// Close закрывает продюсер, дожидаясь отправки буфера
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.log.Info("closing Kafka producer")
	err := p.producer.Close()
	p.wg.Wait()
	if err != nil {
		p.log.Error("failed to close Kafka producer: %v", err)
	}
	return err
}

func (p *Publisher) drainErrors() {
	defer p.wg.Done()
	for perr := range p.producer.Errors() {
		p.log.Error("failed to deliver event to topic=%s: %v", p.topic, perr.Err)
	}
}

func saramaConfig(version sarama.KafkaVersion) *sarama.Config {
	config := sarama.NewConfig()
	config.Version = version
	config.Producer.Return.Successes = false
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	return config
}

// Nop публикатор, который ничего не отправляет (Kafka выключена)
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }
