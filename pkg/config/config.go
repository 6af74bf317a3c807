package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string

	ServerPort int

	StorageURL string

	JWTAccessSecret []byte

	AdminUsername   string
	AdminPassword   string
	AdminSessionTTL time.Duration

	CheckoutDelay time.Duration

	EventsDriver string
	KafkaBrokers []string
	RabbitMQURL  string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	SettingsFile string

	CSRFEnabled     bool
	LoginRatePerMin int
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "storefront"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		StorageURL: EnvDefault("STORAGE_URL", "memory://"),

		JWTAccessSecret: []byte(os.Getenv("JWT_SECRET")),

		AdminUsername:   EnvDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:   EnvDefault("ADMIN_PASSWORD", "mdshop2024"),
		AdminSessionTTL: EnvDurationDefault("ADMIN_SESSION_TTL", 12*time.Hour),

		CheckoutDelay: EnvDurationDefault("CHECKOUT_DELAY", 2*time.Second),

		EventsDriver: strings.ToLower(EnvDefault("EVENTS_DRIVER", "none")),
		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		RabbitMQURL:  os.Getenv("RABBITMQ_URL"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		SettingsFile: os.Getenv("SETTINGS_FILE"),

		CSRFEnabled:     EnvBoolDefault("CSRF_ENABLED", true),
		LoginRatePerMin: EnvIntDefault("LOGIN_RATE_PER_MIN", 5),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvDurationDefault accepts Go durations ("2s") or a bare number of milliseconds.
func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
