package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	POS            POS            `mapstructure:",squash"`
	Session        Session        `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	CatalogRefresh CatalogRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// POS holds the connection settings for the upstream POS ledger API.
// ServiceCredential is an optional pre-encoded Basic credential used only by
// background jobs (catalog refresh); interactive requests always use the
// credential cached for the caller's session.
type POS struct {
	BaseURL           string        `mapstructure:"pos_base_url"`
	RequestTimeout    time.Duration `mapstructure:"pos_request_timeout"`
	ServiceCredential string        `mapstructure:"pos_service_credential"`
}

type Session struct {
	Secret  string        `mapstructure:"session_secret"`
	TTL     time.Duration `mapstructure:"session_ttl"`
	Backend string        `mapstructure:"session_backend"`
}

type Redis struct {
	Addr string `mapstructure:"redis_addr"`
}

type CatalogRefresh struct {
	CronSchedule string `mapstructure:"catalog_refresh_cron"`
	Enabled      bool   `mapstructure:"catalog_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("POS_BASE_URL", "http://localhost:8080/")
	viper.SetDefault("POS_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("POS_SERVICE_CREDENTIAL", "")

	viper.SetDefault("SESSION_SECRET", "your_session_secret")
	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("SESSION_BACKEND", "memory")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")

	viper.SetDefault("CATALOG_REFRESH_CRON", "0 */6 * * *")
	viper.SetDefault("CATALOG_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file first with godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Reading .env with viper is optional since godotenv already loaded it
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file from the working directory when present
func loadEnvFile() {
	wd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	envPath := filepath.Join(wd, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		logrus.Info(".env file not found, relying on environment variables")
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		logrus.Warn(fmt.Sprintf("error loading .env file: %v", err))
		return
	}

	logrus.Info(".env file loaded")
}
