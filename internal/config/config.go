package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	ProductCacheTTL time.Duration `mapstructure:"PRODUCT_CACHE_TTL"`

	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3UseSSL    bool   `mapstructure:"S3_USE_SSL"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3PublicURL string `mapstructure:"S3_PUBLIC_URL"`

	AuthDelay time.Duration `mapstructure:"AUTH_DELAY"`
}

// Load reads app.env from path when present and lets environment variables
// override it.
func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PRODUCT_CACHE_TTL", "5m")
	viper.SetDefault("S3_BUCKET", "product-images")
	viper.SetDefault("AUTH_DELAY", "1s")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	return cf, nil
}
