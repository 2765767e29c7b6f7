package echoserver

import "time"

// Config holds configuration for the echo server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// MaxDelay caps /delay/{ms} so a typo cannot park a connection for hours.
	MaxDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     "127.0.0.1:9999",
		MaxDelay: 30 * time.Second,
	}
}
