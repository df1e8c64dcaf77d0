// internal/workers/matching/rank-applications/config.go
package rankapplications

import "time"

type Config struct {
	// DefaultLimit applies when the job carries no limit variable.
	DefaultLimit int
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultLimit: 10,
		Timeout:      60 * time.Second,
	}
}
