package config

import "time"

// Config holds refresh worker configuration.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	CountryTimeout   time.Duration `env:"COUNTRY_TIMEOUT" envDefault:"45s"`
	ScrapesPerMinute int           `env:"SCRAPES_PER_MINUTE" envDefault:"30"`

	Redis    Redis
	SMTP     SMTP
	RabbitMQ RabbitMQ
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

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"eurocompare-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"eurocompare.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"refresh"`
}
