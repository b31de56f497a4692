package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort            int           `mapstructure:"SERVER_PORT" validate:"required,gte=1,lte=65535"`
	GeminiAPI             string        `mapstructure:"GEMINI_API" validate:"required"`
	GeminiModel           string        `mapstructure:"GEMINI_MODEL" validate:"required"`
	GeminiBaseURL         string        `mapstructure:"GEMINI_BASE_URL" validate:"omitempty,url"`
	CountryAPIURL         string        `mapstructure:"COUNTRY_API_URL" validate:"required,url"`
	HTTPClientTimeout     time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT" validate:"gt=0"`
	RedisAddr             string        `mapstructure:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisDB               int           `mapstructure:"REDIS_DB" validate:"gte=0,lte=16"`
	CountryCacheTTL       time.Duration `mapstructure:"COUNTRY_CACHE_TTL" validate:"gte=0"`
	RataLimitCapacity     float64       `mapstructure:"RATE_LIMITER_CAPACITY" validate:"required,gt=0"`
	RataLimitFillRate     float64       `mapstructure:"RATE_LIMITER_FILL_RATE" validate:"required,gt=0"`
	RateLimitTTL          time.Duration `mapstructure:"RATE_LIMITER_TTL" validate:"gt=0"`
	MaxAllowedSize        int           `mapstructure:"JSON_BODY_MAX_SIZE" validate:"required,gt=0"`
	MaxImageSize          int64         `mapstructure:"MAX_IMAGE_SIZE" validate:"required,gt=0"`
	AIMaxAttempts         int           `mapstructure:"AI_MAX_ATTEMPTS" validate:"required,gte=1,lte=10"`
	AIRetryBaseDelay      time.Duration `mapstructure:"AI_RETRY_BASE_DELAY" validate:"gte=0"`
	LogFile               string        `mapstructure:"LOGGING_FILE"`
	ServerShutdownTimeout int           `mapstructure:"SERVER_SHUTDOWN_TIMEOUT" validate:"required,gte=0"`
}

var defaults = map[string]any{
	"SERVER_PORT":             8080,
	"GEMINI_API":              "",
	"GEMINI_MODEL":            "gemini-1.5-flash",
	"GEMINI_BASE_URL":         "",
	"COUNTRY_API_URL":         "https://restcountries.com/v3.1",
	"HTTP_CLIENT_TIMEOUT":     "15s",
	"REDIS_ADDR":              "",
	"REDIS_DB":                0,
	"COUNTRY_CACHE_TTL":       "1h",
	"RATE_LIMITER_CAPACITY":   20,
	"RATE_LIMITER_FILL_RATE":  0.5,
	"RATE_LIMITER_TTL":        "10m",
	"JSON_BODY_MAX_SIZE":      15 << 20,
	"MAX_IMAGE_SIZE":          10 << 20,
	"AI_MAX_ATTEMPTS":         3,
	"AI_RETRY_BASE_DELAY":     "2s",
	"LOGGING_FILE":            "",
	"SERVER_SHUTDOWN_TIMEOUT": 10,
}

// LoadConfigs reads the optional env file at path and lets process
// environment variables override it.
func LoadConfigs(path string) (*Config, error) {

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var Cfg Config

	err := v.Unmarshal(&Cfg)
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(Cfg)
	if err != nil {
		return nil, err
	}

	return &Cfg, nil

}
