// internal/workers/billing/validate-billing/config.go
package validatebilling

import "time"

type Config struct {
	Timeout time.Duration
	MaxJobs int
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		MaxJobs: 10,
	}
}
