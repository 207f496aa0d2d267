package port

import "context"

// Publisher is the best-effort push channel for real-time delivery of new
// notifications to connected clients. Publish failures never fail the
// triggering request.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
