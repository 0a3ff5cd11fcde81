package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables; no package-level credential
// globals — everything downstream receives this through the container.
type Config struct {
	App      AppConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
	Spotify  SpotifyConfig
	Pipeline PipelineConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string // raw
	UseSSL    bool   // false for local
}

// SpotifyConfig carries the client-credentials pair for the Web API.
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
}

// PipelineConfig defines the object-store layout of the pipeline and the
// default playlist the extract endpoint snapshots.
type PipelineConfig struct {
	IntakePrefix      string // raw documents waiting to be transformed
	DonePrefix        string // raw documents after successful transformation
	TransformedPrefix string // root of the three tabular outputs
	DefaultPlaylistID string
	ScanCron          string // cron spec for the intake re-scan job
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Spotify ETL"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "raw"),
			UseSSL:    false,
		},
		Spotify: SpotifyConfig{
			ClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
			ClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		},
		Pipeline: PipelineConfig{
			IntakePrefix:      getEnv("PIPELINE_INTAKE_PREFIX", "to_be_processed/"),
			DonePrefix:        getEnv("PIPELINE_DONE_PREFIX", "processed/"),
			TransformedPrefix: getEnv("PIPELINE_TRANSFORMED_PREFIX", "transformed_data/"),
			DefaultPlaylistID: getEnv("SPOTIFY_PLAYLIST_ID", "6UeSakyzhiEt4NB3UAd6NQ"), // Global Top 50
			ScanCron:          getEnv("PIPELINE_SCAN_CRON", "*/5 * * * *"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.MinIO.SecretKey == "minioadmin" {
			return fmt.Errorf("MINIO_SECRET_KEY must be set in production")
		}
		if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
			fmt.Println("WARNING: Spotify credentials not set - extraction will not work")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
