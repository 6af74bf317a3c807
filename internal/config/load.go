package config

import (
	"strings"

	"github.com/mdshopp/storefront/pkg/config"
)

type ServiceConfig struct {
	config.Config
}

func Load() ServiceConfig {
	cfg := config.Load()

	config.MustNonEmptyBytes(cfg.JWTAccessSecret, "JWT_SECRET")
	config.MustNonEmpty(cfg.AdminUsername, "ADMIN_USERNAME")
	config.MustNonEmpty(cfg.AdminPassword, "ADMIN_PASSWORD")
	config.MustOneOf(cfg.EventsDriver, "EVENTS_DRIVER", "none", "kafka", "rabbitmq")

	switch cfg.EventsDriver {
	case "kafka":
		config.MustNonEmpty(strings.Join(cfg.KafkaBrokers, ","), "KAFKA_BROKERS")
	case "rabbitmq":
		config.MustNonEmpty(cfg.RabbitMQURL, "RABBITMQ_URL")
	}

	return ServiceConfig{Config: cfg}
}
