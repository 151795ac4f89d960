package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, DefaultBuildsDir, cfg.BuildsDir)
	assert.Equal(t, ConfigPathHeroNames, cfg.HeroNamesPath)
	assert.Equal(t, DefaultImageBaseURL, cfg.ImageBaseURL)
	assert.Equal(t, DefaultVideoBaseURL, cfg.VideoBaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("BUILDS_DIR", "/data/builds")
	t.Setenv("IMAGE_BASE_URL", "https://cdn.example.com/images")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "/data/builds", cfg.BuildsDir)
	assert.Equal(t, "https://cdn.example.com/images", cfg.ImageBaseURL)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "bad image url", mutate: func(c *Config) { c.ImageBaseURL = "not a url" }, wantErr: true},
		{name: "missing builds dir", mutate: func(c *Config) { c.BuildsDir = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:          8080,
				LogLevel:      "INFO",
				LogFormat:     "text",
				LogDir:        "logs",
				Environment:   "dev",
				BuildsDir:     "res/builds",
				HeroNamesPath: "configs/hero_names.json",
				ImageBaseURL:  "https://cdn.example.com/images",
				VideoBaseURL:  "https://cdn.example.com/videos",
			}
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
