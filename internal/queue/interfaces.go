package queue

import "context"

// Consumer ingests messages until ctx is cancelled.
type Consumer interface {
	Start(ctx context.Context) error
}

// Publisher sends a JSON payload under routingKey.
type Publisher interface {
	Publish(ctx context.Context, payload []byte, routingKey string) error
}
