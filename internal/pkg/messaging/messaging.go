package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrDestinationRequired is returned when Publish is called without a topic/subject.
var ErrDestinationRequired = errors.New("messaging: destination is required")

// Messaging is a broker client that can publish messages and must be closed.
type Messaging interface {
	io.Closer
	Publisher
}

// Publisher publishes messages to a destination (topic/subject).
type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// OutgoingMessage represents a broker-agnostic message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte

	// Key is used by Kafka for partitioning.
	Key []byte

	// Headers are forwarded to brokers that support them (Kafka, NATS) and
	// mapped to attributes on Pub/Sub.
	Headers []Header

	// OrderingKey is used by Google Pub/Sub.
	OrderingKey string
}

// Header is a key/value pair used for message headers.
type Header struct {
	Key   string
	Value []byte
}

// PublishResult carries optional broker-specific publish metadata.
type PublishResult struct {
	// MessageID is the broker-assigned message ID, when the broker returns one.
	MessageID string
	// Topic is the destination the message was published to.
	Topic string
	// Timestamp is when the message was handed to the broker.
	Timestamp time.Time
}

func validHeaders(hs []Header) []Header {
	out := hs[:0:0]
	for _, h := range hs {
		if h.Key != "" {
			out = append(out, h)
		}
	}
	return out
}
