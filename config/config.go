package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Salon identity used in notification emails and calendar invites.
	SalonEmailFrom string `mapstructure:"SALON_EMAIL_FROM"`
	SalonEmailTo   string `mapstructure:"SALON_EMAIL_TO"`
	SalonPhone     string `mapstructure:"SALON_PHONE"`
	SalonAddress   string `mapstructure:"SALON_ADDRESS"`

	// Outbound email transport.
	EmailProvider  string `mapstructure:"EMAIL_PROVIDER"`
	ResendAPIKey   string `mapstructure:"RESEND_API_KEY"`
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       string `mapstructure:"SMTP_PORT"`
	SMTPUsername   string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword   string `mapstructure:"SMTP_PASSWORD"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values. The salon defaults are placeholders; deployments
	// must override them or emails and invites carry example contact details.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SALON_EMAIL_FROM", "CLIPPERZ <bookings@clipperz.com>")
	viper.SetDefault("SALON_EMAIL_TO", "info@clipperz.com")
	viper.SetDefault("SALON_PHONE", "(555) 123-4567")
	viper.SetDefault("SALON_ADDRESS", "123 Main Street, Anytown, ST 12345")
	viper.SetDefault("EMAIL_PROVIDER", "resend")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
