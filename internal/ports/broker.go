package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer publishes messages to a broker. The topic is fixed by the implementation.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
