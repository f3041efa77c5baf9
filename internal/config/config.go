package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed around by reference; nothing
// mutates it afterwards.
type Config struct {
	HTTPAddress string
	BaseURL     string

	DatabaseURL string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	JWTSecret    string
	JWTAlgorithm string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	EmailTokenTTL   time.Duration

	SendgridAPIKey string
	MailFrom       string
	MailFromName   string

	S3Region       string
	S3Bucket       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	AllowedOrigins   []string
	AllowCredentials bool

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	for _, key := range []string{
		"HTTP_ADDRESS", "BASE_URL", "DATABASE_URL",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"SECRET_KEY_JWT", "ALGORITHM",
		"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "EMAIL_TOKEN_TTL",
		"SENDGRID_API_KEY", "MAIL_FROM", "MAIL_FROM_NAME",
		"S3_REGION", "S3_BUCKET", "S3_BASE_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("HTTP_ADDRESS", ":8000")
	viper.SetDefault("BASE_URL", "http://localhost:8000")
	viper.SetDefault("ALGORITHM", "HS256")
	viper.SetDefault("ACCESS_TOKEN_TTL", "15m")
	viper.SetDefault("REFRESH_TOKEN_TTL", "168h")
	viper.SetDefault("EMAIL_TOKEN_TTL", "24h")
	viper.SetDefault("MAIL_FROM_NAME", "Contacts API")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:8000"})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		HTTPAddress:       viper.GetString("HTTP_ADDRESS"),
		BaseURL:           viper.GetString("BASE_URL"),
		DatabaseURL:       viper.GetString("DATABASE_URL"),
		RedisAddress:      viper.GetString("REDIS_ADDRESS"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		RedisDB:           viper.GetInt("REDIS_DB"),
		JWTSecret:         viper.GetString("SECRET_KEY_JWT"),
		JWTAlgorithm:      viper.GetString("ALGORITHM"),
		AccessTokenTTL:    viper.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:   viper.GetDuration("REFRESH_TOKEN_TTL"),
		EmailTokenTTL:     viper.GetDuration("EMAIL_TOKEN_TTL"),
		SendgridAPIKey:    viper.GetString("SENDGRID_API_KEY"),
		MailFrom:          viper.GetString("MAIL_FROM"),
		MailFromName:      viper.GetString("MAIL_FROM_NAME"),
		S3Region:          viper.GetString("S3_REGION"),
		S3Bucket:          viper.GetString("S3_BUCKET"),
		S3BaseEndpoint:    viper.GetString("S3_BASE_ENDPOINT"),
		S3AccessKey:       viper.GetString("S3_ACCESS_KEY"),
		S3SecretKey:       viper.GetString("S3_SECRET_KEY"),
		AllowedOrigins:    viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:  viper.GetBool("ALLOW_CREDENTIALS"),
		RateLimitRequests: viper.GetInt("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:   viper.GetDuration("RATE_LIMIT_WINDOW"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SECRET_KEY_JWT is required")
	}
	if cfg.JWTAlgorithm != "HS256" && cfg.JWTAlgorithm != "HS512" {
		return nil, fmt.Errorf("ALGORITHM must be HS256 or HS512, got %q", cfg.JWTAlgorithm)
	}

	return cfg, nil
}
