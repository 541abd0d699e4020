package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// The salon defaults are placeholders. A deployment that forgets to set the
// SALON_* variables silently sends example contact details in every email
// and invite; this pins the values so the risk is at least visible.
func TestLoadConfigPlaceholderDefaults(t *testing.T) {
	viper.Reset()
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "CLIPPERZ <bookings@clipperz.com>", AppConfig.SalonEmailFrom)
	assert.Equal(t, "info@clipperz.com", AppConfig.SalonEmailTo)
	assert.Equal(t, "(555) 123-4567", AppConfig.SalonPhone)
	assert.Equal(t, "123 Main Street, Anytown, ST 12345", AppConfig.SalonAddress)
	assert.Equal(t, "resend", AppConfig.EmailProvider)
	assert.Empty(t, AppConfig.ResendAPIKey)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SALON_PHONE", "(212) 555-0100")
	t.Setenv("EMAIL_PROVIDER", "smtp")

	viper.Reset()
	LoadConfig()

	assert.Equal(t, "(212) 555-0100", AppConfig.SalonPhone)
	assert.Equal(t, "smtp", AppConfig.EmailProvider)

	viper.Reset()
}

func TestIsProduction(t *testing.T) {
	old := AppConfig.Env
	defer func() { AppConfig.Env = old }()

	AppConfig.Env = "production"
	assert.True(t, IsProduction())

	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}
