// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const minJWTSecretLength = 32

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	WhatsApp   WhatsAppConfig   `mapstructure:"whatsapp"`
	AI         AIConfig         `mapstructure:"ai"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	FrontendDir  string `mapstructure:"frontend_dir"`
	OpenAPIPath  string `mapstructure:"openapi_path"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	DedupTTL int    `mapstructure:"dedup_ttl"`
}

// WhatsAppConfig holds Meta WhatsApp Cloud API settings.
type WhatsAppConfig struct {
	BaseURL         string               `mapstructure:"base_url"`
	APIVersion      string               `mapstructure:"api_version"`
	PhoneNumberID   string               `mapstructure:"phone_number_id"`
	AccessToken     string               `mapstructure:"access_token"`
	VerifyToken     string               `mapstructure:"verify_token"`
	BusinessAccount string               `mapstructure:"business_account_id"`
	Timeout         int                  `mapstructure:"timeout"`
	MarkReadTimeout int                  `mapstructure:"mark_read_timeout"`
	CircuitBreaker  CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// AIConfig holds the OpenAI-compatible chat completion endpoint settings.
type AIConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	APIKey         string               `mapstructure:"api_key"`
	Model          string               `mapstructure:"model"`
	SystemPrompt   string               `mapstructure:"system_prompt"`
	MaxHistory     int                  `mapstructure:"max_history"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type AdminConfig struct {
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	JWTSecret       string `mapstructure:"jwt_secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

type MiddlewareConfig struct {
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// LoadConfig reads configuration from the optional YAML file at configPath,
// a .env file in the working directory and the process environment.
// Environment variables win; nested keys use underscores (WHATSAPP_ACCESS_TOKEN).
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.frontend_dir", "")
	v.SetDefault("server.openapi_path", "api/openapi.yaml")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "whatsapp_chatbot")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.migrations_path", "migrations")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dedup_ttl", 86400)

	v.SetDefault("whatsapp.base_url", "https://graph.facebook.com")
	v.SetDefault("whatsapp.api_version", "v24.0")
	v.SetDefault("whatsapp.phone_number_id", "")
	v.SetDefault("whatsapp.access_token", "")
	v.SetDefault("whatsapp.verify_token", "")
	v.SetDefault("whatsapp.business_account_id", "")
	v.SetDefault("whatsapp.timeout", 30)
	v.SetDefault("whatsapp.mark_read_timeout", 10)
	v.SetDefault("whatsapp.circuit_breaker.max_requests", 3)
	v.SetDefault("whatsapp.circuit_breaker.interval", 60)
	v.SetDefault("whatsapp.circuit_breaker.timeout", 60)
	v.SetDefault("whatsapp.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("whatsapp.circuit_breaker.consecutive_fails", 5)

	v.SetDefault("ai.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "llama-3.3-70b-versatile")
	v.SetDefault("ai.system_prompt", "You are a helpful AI assistant on WhatsApp. Be friendly, concise, and helpful.")
	v.SetDefault("ai.max_history", 10)
	v.SetDefault("ai.circuit_breaker.max_requests", 3)
	v.SetDefault("ai.circuit_breaker.interval", 60)
	v.SetDefault("ai.circuit_breaker.timeout", 30)
	v.SetDefault("ai.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("ai.circuit_breaker.consecutive_fails", 5)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.token_ttl_minutes", 30)

	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"http://localhost:3000", "http://localhost:8000"})
	v.SetDefault("middleware.request_timeout", 120)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Validate reports missing credentials the service cannot start without.
func (c *Config) Validate() error {
	var missing []string

	if c.WhatsApp.PhoneNumberID == "" {
		missing = append(missing, "whatsapp.phone_number_id")
	}
	if c.WhatsApp.AccessToken == "" {
		missing = append(missing, "whatsapp.access_token")
	}
	if c.WhatsApp.VerifyToken == "" {
		missing = append(missing, "whatsapp.verify_token")
	}
	if c.AI.APIKey == "" {
		missing = append(missing, "ai.api_key")
	}
	if c.Admin.Password == "" {
		missing = append(missing, "admin.password")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if len(c.Admin.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("admin.jwt_secret must be at least %d characters", minJWTSecretLength)
	}

	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL connection URL used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// MessagesURL returns the Graph API endpoint for the configured phone number.
func (w *WhatsAppConfig) MessagesURL() string {
	return fmt.Sprintf("%s/%s/%s/messages", strings.TrimRight(w.BaseURL, "/"), w.APIVersion, w.PhoneNumberID)
}
