// internal/handlers/score-applicant/config.go
package scoreapplicant

import "time"

// Config bounds the request body and the store call of one request.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      5 * time.Second,
		MaxBodyBytes: 1 << 20,
	}
}
