package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "valorhub", cfg.MongoDB)
	assert.Equal(t, "https://valorant-api.com/v1", cfg.AgentsAPIURL)
	assert.Equal(t, "access", cfg.AdminPassword)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("MONGO_DB")
	defer viper.Reset()

	os.Setenv("PORT", "8080")
	os.Setenv("MONGO_DB", "valorhub_test")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "valorhub_test", cfg.MongoDB)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Complete config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing mongo URI", func(c *Config) { c.MongoURI = "" }, true},
		{"Missing database name", func(c *Config) { c.MongoDB = "" }, true},
		{"Missing agents URL", func(c *Config) { c.AgentsAPIURL = "" }, true},
		{"Missing admin credential", func(c *Config) { c.AdminPassword = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:          "5000",
				MongoURI:      "mongodb://localhost:27017",
				MongoDB:       "valorhub",
				AgentsAPIURL:  "https://valorant-api.com/v1",
				AdminEmail:    "admin@valorhub.gg",
				AdminPassword: "access",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
