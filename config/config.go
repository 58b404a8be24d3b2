package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Chat  ChatConfig
}

type AppConfig struct {
	Port           string
	Env            string
	SeedOnStartup  bool
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type ChatConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	RateLimit   int
	RateWindow  time.Duration
	HistoryCap  int
	Temperature float32
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine when everything comes from the process
	// environment (containerized deployments).
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	rateWindow, err := time.ParseDuration(viper.GetString("CHAT_RATE_WINDOW"))
	if err != nil {
		rateWindow = time.Minute
	}

	rateLimit := viper.GetInt("CHAT_RATE_LIMIT")
	if rateLimit <= 0 {
		rateLimit = 20
	}

	maxTokens := viper.GetInt("CHAT_MAX_TOKENS")
	if maxTokens <= 0 {
		maxTokens = 300
	}

	historyCap := viper.GetInt("CHAT_HISTORY_CAP")
	if historyCap <= 0 {
		historyCap = 20
	}

	model := viper.GetString("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	allowedOrigins := []string{"*"}
	if raw := viper.GetString("CORS_ALLOWED_ORIGINS"); raw != "" {
		allowedOrigins = allowedOrigins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			SeedOnStartup:  viper.GetBool("SEED_ON_STARTUP"),
			AllowedOrigins: allowedOrigins,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Chat: ChatConfig{
			APIKey:      viper.GetString("OPENAI_API_KEY"),
			Model:       model,
			MaxTokens:   maxTokens,
			RateLimit:   rateLimit,
			RateWindow:  rateWindow,
			HistoryCap:  historyCap,
			Temperature: 0.7,
		},
	}

	return config, nil
}
