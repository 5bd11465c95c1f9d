package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"opensea-orders/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// RequestTimeoutSeconds bounds a single upstream lookup made on behalf of a caller.
	RequestTimeoutSeconds int `mapstructure:"REQUEST_TIMEOUT_SECONDS" default:"10"`

	// OpenSea holds the marketplace API configuration.
	OpenSea OpenSeaConfig `mapstructure:",squash"`

	// Cache holds the optional order cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy configuration.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// OpenSeaConfig holds the credentials for the OpenSea API.
type OpenSeaConfig struct {
	// APIKey is sent as the X-API-KEY header on every request when set.
	APIKey string `mapstructure:"OPENSEA_API_KEY"`
	// BaseURL is the API root. Only tests and mirrors override it.
	BaseURL string `mapstructure:"OPENSEA_BASE_URL" default:"https://api.opensea.io/api/v2" required:"true"`
	// RequireAPIKey makes a missing APIKey a configuration error.
	RequireAPIKey bool `mapstructure:"OPENSEA_REQUIRE_API_KEY" default:"true"`
}

// Validate reports an error when the key is required but absent.
func (c OpenSeaConfig) Validate() error {
	if c.RequireAPIKey && c.APIKey == "" {
		return fmt.Errorf("missing required configuration: %s", "OPENSEA_API_KEY")
	}
	return nil
}

// CacheConfig holds the Redis connection used to cache v2 order lookups.
type CacheConfig struct {
	// RedisURL is redis://[:password@]host[:port][/database]. Empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`
	// OrderTTLSeconds is how long a fetched v2 order stays cached.
	OrderTTLSeconds int `mapstructure:"ORDER_CACHE_TTL_SECONDS" default:"30"`
}

// Enabled reports whether a Redis URL was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// OrderTTL returns the cache TTL as a duration.
func (c CacheConfig) OrderTTL() time.Duration {
	return time.Duration(c.OrderTTLSeconds) * time.Second
}

// ProxyConfig holds the outbound proxy used for marketplace requests.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Settings converts the configuration into proxy.Settings.
func (p ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  p.Enabled,
		Hostname: p.Hostname,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
	}
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := config.OpenSea.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
