// Package uid generates string identifiers for requests and events.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
