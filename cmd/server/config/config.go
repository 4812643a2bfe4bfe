package config

import "time"

// Config holds API server configuration.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"`
	HTTPPort         string        `env:"HTTP_PORT" envDefault:"8080"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	CountryTimeout   time.Duration `env:"COUNTRY_TIMEOUT" envDefault:"45s"`
	ScrapesPerMinute int           `env:"SCRAPES_PER_MINUTE" envDefault:"30"`
	PriceCeiling     float64       `env:"PRICE_CEILING" envDefault:"100000"`

	Redis Redis
	SMTP  SMTP
}

// Redis holds Redis connection configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SMTP holds alert mail delivery configuration. Delivery is disabled
// when host or sender are left empty.
type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM"`
}
