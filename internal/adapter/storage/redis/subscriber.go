package redis

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const notificationPattern = "notifications:*"

type UserSender interface {
	SendToUser(userID string, message []byte)
}

// Subscriber bridges the notification pub/sub channels into the local
// websocket hub. Run blocks until the context is cancelled.
type Subscriber struct {
	client *redis.Client
	sender UserSender
	logger *zap.Logger
}

func NewSubscriber(client *redis.Client, sender UserSender, logger *zap.Logger) *Subscriber {
	return &Subscriber{client: client, sender: sender, logger: logger}
}

func (s *Subscriber) Run(ctx context.Context) {
	pubsub := s.client.PSubscribe(ctx, notificationPattern)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			userID, found := strings.CutPrefix(msg.Channel, "notifications:")
			if !found || userID == "" {
				s.logger.Warn("unexpected pubsub channel", zap.String("channel", msg.Channel))
				continue
			}
			s.sender.SendToUser(userID, []byte(msg.Payload))
		}
	}
}
