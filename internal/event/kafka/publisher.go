package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/twmb/franz-go/pkg/kgo"

	"docregistry/internal/event"
)

// Publisher bridges the in-process bus to a Kafka topic for external
// subscribers (e.g. the web backend's audit pipeline). Records are JSON
// encoded and keyed by owner so one owner's events stay in partition order.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// NewPublisher connects to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{client: client, topic: topic}, nil
}

// Run forwards events from inbox until the context is canceled or the inbox
// is closed. Produce errors are logged; the bus side is never blocked.
func (p *Publisher) Run(ctx context.Context, inbox <-chan event.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-inbox:
			if !ok {
				return nil
			}
			p.produce(ctx, ev)
		}
	}
}

func (p *Publisher) produce(ctx context.Context, ev event.Event) {
	value, err := json.Marshal(ev)
	if err != nil {
		log.Printf("kafka publisher: encode %s for %s/%s failed: %v", ev.Type, ev.Owner, ev.DocumentID, err)
		return
	}
	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(ev.Owner),
		Value: value,
	}
	p.client.Produce(ctx, rec, func(_ *kgo.Record, err error) {
		if err != nil {
			log.Printf("kafka publisher: produce %s for %s/%s failed: %v", ev.Type, ev.Owner, ev.DocumentID, err)
		}
	})
}

// Close flushes buffered records and releases the client.
func (p *Publisher) Close() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
