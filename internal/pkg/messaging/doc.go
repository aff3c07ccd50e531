// Package messaging provides a broker-agnostic API for publishing messages.
//
// Business code depends on Publisher; the concrete broker (Kafka, NATS, NSQ,
// Google Pub/Sub) is picked at startup by NewFromDriver. DriverNone disables
// publishing without changing callers.
package messaging
