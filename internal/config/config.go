package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings. Values come from SHOPDASH_* environment
// variables with sensible defaults for local development.
type Config struct {
	Addr            string
	DatabaseURL     string
	RedisAddr       string
	JWTSecret       string
	JWTTTL          time.Duration
	RefreshInterval time.Duration
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHOPDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("jwt_secret", "dev-secret")
	v.SetDefault("jwt_ttl", "15m")
	v.SetDefault("refresh_interval", "30s")

	cfg := Config{
		Addr:            v.GetString("addr"),
		DatabaseURL:     v.GetString("database_url"),
		RedisAddr:       v.GetString("redis_addr"),
		JWTSecret:       v.GetString("jwt_secret"),
		JWTTTL:          v.GetDuration("jwt_ttl"),
		RefreshInterval: v.GetDuration("refresh_interval"),
	}
	return cfg, nil
}
