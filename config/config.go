package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	APIBaseURL string

	// RequestTimeout bounds every single HTTP call to the booking API.
	RequestTimeout time.Duration

	// ConfirmFallback is how long a submission may sit in Pending before it
	// is promoted to Confirmed with a synthesized booking id.
	ConfirmFallback time.Duration
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "ridebook"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.APIBaseURL = cast.ToString(getOrReturnDefault("API_BASE_URL", "http://115.186.137.140:8181"))

	cfg.RequestTimeout = time.Duration(cast.ToInt(getOrReturnDefault("REQUEST_TIMEOUT_SECONDS", 15))) * time.Second
	cfg.ConfirmFallback = time.Duration(cast.ToInt(getOrReturnDefault("CONFIRM_FALLBACK_SECONDS", 5))) * time.Second

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
