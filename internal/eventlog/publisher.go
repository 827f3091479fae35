package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher relays committed entries to a Kafka topic for downstream
// consumers (dashboards, external auditors). Messages are keyed by entry
// index and carry the full entry JSON, so consumers can verify the hash
// chain without reading the registry's own storage.
type Publisher struct {
	log    *Log
	client *kgo.Client
	topic  string
	logger *slog.Logger

	PollInterval time.Duration
}

// NewPublisher connects to the given brokers and ensures the topic exists.
func NewPublisher(log *Log, brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		// One partition per topic keeps the chain ordering intact on the
		// consumer side.
		kgo.RecordPartitioner(kgo.ManualPartitioner()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopic(ctx, 1, 1, nil, topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ensure topic %q: %w", topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		client.Close()
		return nil, fmt.Errorf("create topic %q: %w", topic, resp.Err)
	}

	return &Publisher{
		log:          log,
		client:       client,
		topic:        topic,
		logger:       logger,
		PollInterval: time.Second,
	}, nil
}

// Run publishes entries in order until ctx is cancelled. Publishing is
// at-least-once; consumers dedupe on the entry index key.
func (p *Publisher) Run(ctx context.Context) error {
	defer p.client.Close()

	var cursor int64
	wake := p.log.Watch()
	ticker := time.NewTicker(p.PollInterval)
	defer ticker.Stop()

	for {
		cursor = p.publishFrom(ctx, cursor)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
		case <-ticker.C:
		}
	}
}

func (p *Publisher) publishFrom(ctx context.Context, cursor int64) int64 {
	for {
		batch := p.log.ListAfter(cursor, 128)
		if len(batch) == 0 {
			return cursor
		}
		for _, e := range batch {
			value, _ := json.Marshal(e)
			record := &kgo.Record{
				Topic:     p.topic,
				Partition: 0,
				Key:       []byte(strconv.FormatInt(e.Index, 10)),
				Value:     value,
			}
			if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
				p.logger.ErrorContext(ctx, "kafka publish failed",
					"index", e.Index,
					"error", err,
				)
				return cursor
			}
			cursor = e.Index
		}
	}
}
