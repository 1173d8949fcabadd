package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// SUPERMARKET_DATA_DIR or SUPERMARKET_HTTP_ADDR.
const EnvPrefix = "SUPERMARKET"

// Config groups the application settings.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Data      DataConfig
	HTTP      HTTPConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Env string // development, production
}

type LogConfig struct {
	Level string
}

// DataConfig locates the two JSON collections. Relative file names are
// resolved against Dir.
type DataConfig struct {
	Dir          string
	ProductsFile string
	SalesFile    string
	// StrictLoad refuses to overwrite a store whose file could not be decoded.
	StrictLoad bool
}

func (c DataConfig) ProductsPath() string {
	return c.resolve(c.ProductsFile)
}

func (c DataConfig) SalesPath() string {
	return c.resolve(c.SalesFile)
}

func (c DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	RateLimit       RateLimitConfig
}

// RateLimitConfig is a per-client token bucket. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type AnalyticsConfig struct {
	// LowStockThreshold counts products at or below this stock as low.
	LowStockThreshold int
}

// New returns a viper instance with defaults, env binding and config file
// search paths set up. Callers may bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.products_file", "products.json")
	v.SetDefault("data.sales_file", "sales.json")
	v.SetDefault("data.strict_load", false)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.rate_limit.rps", 5.0)
	v.SetDefault("http.rate_limit.burst", 10)
	v.SetDefault("analytics.low_stock_threshold", 5)
}

// Load reads the optional config file and builds a Config. Environment
// variables and bound flags take priority over the file.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("app.env"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Data: DataConfig{
			Dir:          v.GetString("data.dir"),
			ProductsFile: v.GetString("data.products_file"),
			SalesFile:    v.GetString("data.sales_file"),
			StrictLoad:   v.GetBool("data.strict_load"),
		},
		HTTP: HTTPConfig{
			Addr:            v.GetString("http.addr"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
			RateLimit: RateLimitConfig{
				RPS:   v.GetFloat64("http.rate_limit.rps"),
				Burst: v.GetInt("http.rate_limit.burst"),
			},
		},
		Analytics: AnalyticsConfig{
			LowStockThreshold: v.GetInt("analytics.low_stock_threshold"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Data.ProductsFile) == "" {
		errs = append(errs, errors.New("data.products_file is required"))
	}
	if strings.TrimSpace(c.Data.SalesFile) == "" {
		errs = append(errs, errors.New("data.sales_file is required"))
	}
	if c.Data.ProductsPath() == c.Data.SalesPath() {
		errs = append(errs, errors.New("products and sales must be stored in different files"))
	}
	if c.HTTP.RateLimit.RPS > 0 && c.HTTP.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("http.rate_limit.burst must be at least 1 when rate limiting is enabled"))
	}
	if c.Analytics.LowStockThreshold < 0 {
		errs = append(errs, errors.New("analytics.low_stock_threshold cannot be negative"))
	}
	return errors.Join(errs...)
}
