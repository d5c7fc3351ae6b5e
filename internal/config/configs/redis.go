package configs

import "time"

// Redis configures the Redis-backed ad directory.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// AdTTL expires ads that never reach a terminal event. Zero disables
	// expiry.
	AdTTL time.Duration `env:"AD_TTL" envDefault:"1h"`
	// HistoryTTL is how long recorded events are kept. It is stretched to the
	// ad's remaining TTL when that is longer, and ignored for ads that never
	// expire.
	HistoryTTL time.Duration `env:"HISTORY_TTL" envDefault:"168h"`
}
