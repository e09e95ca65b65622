package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// CORS
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// AI assistant
	AssistantAPIKey    string `mapstructure:"ASSISTANT_API_KEY"`
	AssistantModel     string `mapstructure:"ASSISTANT_MODEL"`
	AssistantRateLimit string `mapstructure:"ASSISTANT_RATE_LIMIT"`

	// Payment gateway overrides; empty values leave the seeded
	// configuration untouched
	MidtransAPIKey string `mapstructure:"MIDTRANS_API_KEY"`
	XenditAPIKey   string `mapstructure:"XENDIT_API_KEY"`
	IsSandbox      bool
	IsSandboxSet   bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("ASSISTANT_API_KEY", "")
	viper.SetDefault("ASSISTANT_MODEL", "gpt-4o-mini")
	viper.SetDefault("ASSISTANT_RATE_LIMIT", "10-M")
	viper.SetDefault("MIDTRANS_API_KEY", "")
	viper.SetDefault("XENDIT_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.AssistantAPIKey = strings.TrimSpace(viper.GetString("ASSISTANT_API_KEY"))
	if cfg.AssistantAPIKey == "" {
		log.Println("Warning: ASSISTANT_API_KEY not set. Assistant queries will return the fallback reply.")
	}
	cfg.AssistantModel = viper.GetString("ASSISTANT_MODEL")
	cfg.AssistantRateLimit = viper.GetString("ASSISTANT_RATE_LIMIT")

	cfg.MidtransAPIKey = viper.GetString("MIDTRANS_API_KEY")
	cfg.XenditAPIKey = viper.GetString("XENDIT_API_KEY")
	cfg.IsSandboxSet = viper.IsSet("IS_SANDBOX")
	if cfg.IsSandboxSet {
		cfg.IsSandbox = viper.GetBool("IS_SANDBOX")
	}

	return cfg, nil
}
