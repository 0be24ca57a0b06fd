package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "INVENTORY"

// Keys understood by Load.
const (
	KeyAPIURL         = "api_url"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyRequestTimeout = "request_timeout"
	KeyRateLimit      = "rate_limit"
	KeyRateBurst      = "rate_burst"
	KeyRedisAddr      = "redis_addr"
	KeyRedisPassword  = "redis_password"
	KeyRedisDB        = "redis_db"
	KeySnapshotKey    = "snapshot_key"
	KeySnapshotTTL    = "snapshot_ttl"
)

type Config struct {
	APIURL         string
	Log            LogConfig
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
	Redis          RedisConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	SnapshotKey string
	SnapshotTTL time.Duration
}

// SnapshotEnabled reports whether a Redis address was configured.
func (c RedisConfig) SnapshotEnabled() bool {
	return c.Addr != ""
}

// SetDefaults registers defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, "http://localhost:3001")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyRequestTimeout, time.Duration(0))
	v.SetDefault(KeyRateLimit, 0.0)
	v.SetDefault(KeyRateBurst, 1)
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeySnapshotKey, "inventory:products:snapshot")
	v.SetDefault(KeySnapshotTTL, 24*time.Hour)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIURL: strings.TrimRight(v.GetString(KeyAPIURL), "/"),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		RateLimit:      v.GetFloat64(KeyRateLimit),
		RateBurst:      v.GetInt(KeyRateBurst),
		Redis: RedisConfig{
			Addr:        v.GetString(KeyRedisAddr),
			Password:    v.GetString(KeyRedisPassword),
			DB:          v.GetInt(KeyRedisDB),
			SnapshotKey: v.GetString(KeySnapshotKey),
			SnapshotTTL: v.GetDuration(KeySnapshotTTL),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", KeyAPIURL, c.APIURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%s cannot be negative", KeyRequestTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%s cannot be negative", KeyRateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("%s must be at least 1 when %s is set", KeyRateBurst, KeyRateLimit)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%s must be console or json, got %q", KeyLogFormat, c.Log.Format)
	}
	return nil
}
