package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	"github.com/kindfood/erp-system/common"
)

const (
	defaultAddr                = "0.0.0.0:8080"
	defaultSessionDisplayDelay = 1500 * time.Millisecond
	defaultDraftTTL            = 2 * time.Hour
	defaultIdentityToolkitURL  = "https://identitytoolkit.googleapis.com/v1"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Session  SessionConfig
	Pricing  PricingConfig
}

type ServerConfig struct {
	Addr       string
	SentryDSN  string
	GCPLogging bool
	DraftTTL   time.Duration
}

type FirebaseConfig struct {
	ProjectID          string
	APIKey             string
	StorageBucket      string
	IdentityToolkitURL string
}

type SessionConfig struct {
	DisplayDelay time.Duration
}

type PricingConfig struct {
	KeepUnmatched bool
}

// Load reads the configuration from an optional .env file, overridden by the environment.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config: .env file not found, using environment variables: %v", err)
	}

	v.AutomaticEnv()

	v.SetDefault("SESSION_DISPLAY_DELAY", defaultSessionDisplayDelay)
	v.SetDefault("DRAFT_TTL", defaultDraftTTL)
	v.SetDefault("IDENTITY_TOOLKIT_URL", defaultIdentityToolkitURL)
	v.SetDefault("GOOGLE_CLOUD_PROJECT", common.ProjectID)
	v.SetDefault("GCP_LOGGING", !common.IsLocalhost)

	cfg := &Config{
		Server: ServerConfig{
			Addr:       addr(v.GetString("PORT")),
			SentryDSN:  v.GetString("SENTRY_DSN"),
			GCPLogging: v.GetBool("GCP_LOGGING"),
			DraftTTL:   v.GetDuration("DRAFT_TTL"),
		},
		Firebase: FirebaseConfig{
			ProjectID:          v.GetString("GOOGLE_CLOUD_PROJECT"),
			APIKey:             v.GetString("FIREBASE_API_KEY"),
			StorageBucket:      v.GetString("STORAGE_BUCKET"),
			IdentityToolkitURL: v.GetString("IDENTITY_TOOLKIT_URL"),
		},
		Session: SessionConfig{
			DisplayDelay: v.GetDuration("SESSION_DISPLAY_DELAY"),
		},
		Pricing: PricingConfig{
			KeepUnmatched: v.GetBool("PRICING_KEEP_UNMATCHED"),
		},
	}

	if cfg.Firebase.StorageBucket == "" {
		cfg.Firebase.StorageBucket = cfg.Firebase.ProjectID + ".appspot.com"
	}

	log.Printf("config: project [%s] bucket [%s] addr [%s]", cfg.Firebase.ProjectID, cfg.Firebase.StorageBucket, cfg.Server.Addr)

	return cfg
}

func addr(port string) string {
	if port == "" {
		return defaultAddr
	}

	return ":" + port
}
