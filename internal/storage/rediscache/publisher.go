package rediscache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// StockChangedChannel carries the fire-and-forget stock-changed signal for
// listeners outside this process, such as a second register.
const StockChangedChannel = "bakery:stock_changed"

const publishTimeout = 2 * time.Second

// Publisher relays the in-process stock-changed broadcast to Redis pub/sub.
type Publisher struct {
	client *redis.Client
	logger *log.Logger
}

func NewPublisher(client *redis.Client, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{client: client, logger: logger}
}

// Notify publishes the signal. The broadcast carries no payload and makes no
// delivery guarantee, so publish errors are only logged.
func (p *Publisher) Notify() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.client.Publish(ctx, StockChangedChannel, "").Err(); err != nil {
		p.logger.Printf("WARN: publish stock changed: %v", err)
	}
}
