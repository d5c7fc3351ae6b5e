package configs

import "strings"

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Store selects the ad directory backend and optional demo data.
type Store struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
	// SeedCount demo ads are saved on startup when positive.
	SeedCount int `env:"SEED_COUNT" envDefault:"0"`
}

// NormalizedBackend returns the lower-cased backend name. Unknown values fall
// back to memory.
func (c Store) NormalizedBackend() string {
	switch b := strings.ToLower(c.Backend); b {
	case BackendPostgres, BackendRedis:
		return b
	default:
		return BackendMemory
	}
}
