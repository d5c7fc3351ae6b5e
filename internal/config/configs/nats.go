package configs

// NATS configures publishing of event outcomes. An empty URL disables it.
type NATS struct {
	URL string `env:"URL"`
}
