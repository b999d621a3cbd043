package gateway

import "time"

// Config holds generation settings shared by the four section calls.
type Config struct {
	// Timeout bounds a single generation call. Zero disables the deadline.
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for section generation.
func DefaultConfig() Config {
	return Config{
		Timeout:     60 * time.Second,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
