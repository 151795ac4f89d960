package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`
	Environment string `validate:"oneof=dev staging prod test"`
	Version     string

	BuildsDir           string `validate:"required"`
	HeroNamesPath       string `validate:"required"`
	HeroNamesSchemaPath string
	ImageBaseURL        string `validate:"required,url"`
	VideoBaseURL        string `validate:"required,url"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		BuildsDir:           getEnv("BUILDS_DIR", DefaultBuildsDir),
		HeroNamesPath:       getEnv("HERO_NAMES_PATH", ConfigPathHeroNames),
		HeroNamesSchemaPath: getEnv("HERO_NAMES_SCHEMA_PATH", ConfigPathHeroNamesSchema),
		ImageBaseURL:        getEnv("IMAGE_BASE_URL", DefaultImageBaseURL),
		VideoBaseURL:        getEnv("VIDEO_BASE_URL", DefaultVideoBaseURL),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
