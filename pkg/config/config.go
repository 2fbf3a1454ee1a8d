package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "SKINSHOP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv               = "SKINSHOP_APP_ENV"
	EnvPort                 = "SKINSHOP_APP_PORT"
	EnvLogLevel             = "SKINSHOP_LOG_LEVEL"
	EnvLogFormat            = "SKINSHOP_LOG_FORMAT"
	EnvCatalogSeedPath      = "SKINSHOP_CATALOG_SEED_PATH"
	EnvBrowseCacheSize      = "SKINSHOP_BROWSE_CACHE_SIZE"
	EnvBrowseCacheTTL       = "SKINSHOP_BROWSE_CACHE_TTL"
	EnvCheckoutDelay        = "SKINSHOP_CHECKOUT_DELAY"
	EnvNotificationCapacity = "SKINSHOP_NOTIFICATION_CAPACITY"
	EnvCORSAllowedOrigins   = "SKINSHOP_CORS_ALLOWED_ORIGINS"
	EnvAdminEnabled         = "SKINSHOP_ADMIN_ENABLED"
)

type Config struct {
	App           AppConfig
	Catalog       CatalogConfig
	Browse        BrowseConfig
	Checkout      CheckoutConfig
	Notifications NotificationsConfig
	CORS          CORSConfig
	Admin         AdminConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Browse.CacheSize <= 0 {
		return fmt.Errorf("%s must be positive", EnvBrowseCacheSize)
	}
	if c.Checkout.ProcessingDelay < 0 {
		return fmt.Errorf("%s must not be negative", EnvCheckoutDelay)
	}
	if c.Notifications.FeedCapacity <= 0 {
		return fmt.Errorf("%s must be positive", EnvNotificationCapacity)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SKINSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"SKINSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SKINSHOP_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"SKINSHOP_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"SKINSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at an optional YAML seed replacing the embedded catalog.
type CatalogConfig struct {
	SeedPath string `envconfig:"SKINSHOP_CATALOG_SEED_PATH"`
}

type BrowseConfig struct {
	CacheSize int           `envconfig:"SKINSHOP_BROWSE_CACHE_SIZE" default:"128"`
	CacheTTL  time.Duration `envconfig:"SKINSHOP_BROWSE_CACHE_TTL" default:"5m"`
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `envconfig:"SKINSHOP_CHECKOUT_DELAY" default:"2s"`
}

type NotificationsConfig struct {
	FeedCapacity int `envconfig:"SKINSHOP_NOTIFICATION_CAPACITY" default:"50"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SKINSHOP_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
}

// AdminConfig toggles the non-persisted admin workspace routes.
type AdminConfig struct {
	Enabled bool `envconfig:"SKINSHOP_ADMIN_ENABLED" default:"true"`
}
