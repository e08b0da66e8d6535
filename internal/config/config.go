package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Mail     MailConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// StorageConfig selects the catalog persistence backend: "bolt" (embedded
// file, the default) or "postgres".
type StorageConfig struct {
	Backend  string
	BoltPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

// RedisConfig configures rate limiting on the public form endpoints.
// Rate limiting is skipped entirely when Enabled is false.
type RedisConfig struct {
	Enabled           bool
	Host              string
	Port              string
	Password          string
	DB                int
	RequestsPerMinute int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// MailConfig is the fixed addressing for quote/contact dispatches.
type MailConfig struct {
	BusinessAddress string
	FromAddress     string
	FromName        string
}

// AdminConfig gates the image-management surface.
type AdminConfig struct {
	PasswordHash    string
	JWTSecret       string
	TokenTTLMinutes int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("ALLOWED_ORIGINS", "https://tendasdemozambique.com")
	viper.SetDefault("STORAGE_BACKEND", "bolt")
	viper.SetDefault("BOLT_PATH", "tendas.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_FROM", "noreply@tendasdemozambique.com")
	viper.SetDefault("MAIL_FROM_NAME", "Tendas de Mozambique")
	viper.SetDefault("ADMIN_TOKEN_TTL_MINUTES", 60)

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
		},
		Storage: StorageConfig{
			Backend:  viper.GetString("STORAGE_BACKEND"),
			BoltPath: viper.GetString("BOLT_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			Host:              viper.GetString("REDIS_HOST"),
			Port:              viper.GetString("REDIS_PORT"),
			Password:          viper.GetString("REDIS_PASSWORD"),
			DB:                viper.GetInt("REDIS_DB"),
			RequestsPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
		},
		Mail: MailConfig{
			BusinessAddress: viper.GetString("MAIL_BUSINESS_ADDRESS"),
			FromAddress:     viper.GetString("MAIL_FROM"),
			FromName:        viper.GetString("MAIL_FROM_NAME"),
		},
		Admin: AdminConfig{
			PasswordHash:    viper.GetString("ADMIN_PASSWORD_HASH"),
			JWTSecret:       viper.GetString("ADMIN_JWT_SECRET"),
			TokenTTLMinutes: viper.GetInt("ADMIN_TOKEN_TTL_MINUTES"),
		},
	}
}
