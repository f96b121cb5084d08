package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// API gateway the backend services sit behind.
	GatewayBaseURL        string `mapstructure:"GATEWAY_BASE_URL"`
	GatewayTimeoutSeconds int    `mapstructure:"GATEWAY_TIMEOUT_SECONDS"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB  int    `mapstructure:"REDIS_SESSION_DB"`
	RedisWorkflowDB int    `mapstructure:"REDIS_WORKFLOW_DB"`

	SessionTTLMinutes  int `mapstructure:"SESSION_TTL_MINUTES"`
	WorkflowTTLMinutes int `mapstructure:"WORKFLOW_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GATEWAY_BASE_URL", "http://localhost:8080")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_WORKFLOW_DB", 1)
	viper.SetDefault("SESSION_TTL_MINUTES", 720)
	viper.SetDefault("WORKFLOW_TTL_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// GatewayTimeout returns the request ceiling for gateway calls.
func GatewayTimeout() time.Duration {
	secs := AppConfig.GatewayTimeoutSeconds
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// SessionTTL returns how long an idle session survives in the store.
func SessionTTL() time.Duration {
	mins := AppConfig.SessionTTLMinutes
	if mins <= 0 {
		mins = 720
	}
	return time.Duration(mins) * time.Minute
}

// WorkflowTTL bounds the lifetime of an in-progress booking workflow.
func WorkflowTTL() time.Duration {
	mins := AppConfig.WorkflowTTLMinutes
	if mins <= 0 {
		mins = 30
	}
	return time.Duration(mins) * time.Minute
}
