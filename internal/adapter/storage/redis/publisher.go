package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Publisher pushes payloads onto redis pub/sub channels. Subscribed API
// instances bridge them into their websocket hubs, so a client connected to
// any instance still receives the message.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, topic, data).Err()
}
