// internal/workers/matching/match-creators/config.go
package matchcreators

import "time"

type Config struct {
	Timeout time.Duration
	MaxJobs int
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		MaxJobs: 5,
	}
}
