package config

import (
	"io"
	"time"
)

// DurationConfig defines helpers for retrieving time-based configuration values.
//
// Values are stored as plain integers and scaled by the unit named in the
// method, so `ttl_seconds: 300` is read with GetSecond.
type DurationConfig interface {
	// GetSecond retrieves the value associated with key as a number of seconds.
	// Missing or non-numeric values yield zero.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value associated with key as a number of minutes.
	// Missing or non-numeric values yield zero.
	GetMinute(key string) time.Duration
}

// Config defines a set of methods for retrieving configuration values of various types.
// Implementations of this interface should handle the retrieval and type conversion
// of configuration data and fall back to zero values for absent keys.
type Config interface {
	io.Closer
	DurationConfig

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetInt64 retrieves the configuration value associated with the given key as an int64.
	GetInt64(key string) int64

	// GetFloat64 retrieves the configuration value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetArray retrieves the configuration value associated with the given key as a slice of strings.
	// Configuration value is stored with format <element1>,<element2>,...
	// Elements are trimmed and empty elements are dropped.
	GetArray(key string) []string
}
