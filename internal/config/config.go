package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ats-checker/internal/constants"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address                string   `yaml:"address" validate:"required"`
	APIKey                 string   `yaml:"api_key"`            // optional; enables keyauth when set
	CORSAllowOrigins       []string `yaml:"cors_allow_origins"` // defaults to ["*"]
	MaxUploadBytes         int64    `yaml:"max_upload_bytes" validate:"gte=0"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LoggerConfig mirrors logger.Config so the log system is YAML-driven.
type LoggerConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
}

// TracingConfig gates the OTLP trace exporter.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint" validate:"required_if=Enabled true"`
	SampleRatio float64 `yaml:"sample_ratio" validate:"gte=0,lte=1"`
}

// ExtractorConfig holds text-extraction settings.
type ExtractorConfig struct {
	PDFTimeoutSeconds int `yaml:"pdf_timeout_seconds" validate:"gte=0"`
}

// ScoringConfig exposes the tunable analysis thresholds. These override the
// defaults in analysis.DefaultRules; zero values mean "keep the default".
type ScoringConfig struct {
	MinContentLength    int `yaml:"min_content_length" validate:"gte=0"`
	MinResumeIndicators int `yaml:"min_resume_indicators" validate:"gte=0"`
	MinResumeWords      int `yaml:"min_resume_words" validate:"gte=0"`
	TopMissingKeywords  int `yaml:"top_missing_keywords" validate:"gte=0"`
}

// Config is the application configuration, loaded once at startup and
// treated as read-only afterwards.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// Default returns the configuration used when a field is absent from the
// YAML file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:                ":8080",
			CORSAllowOrigins:       []string{"*"},
			MaxUploadBytes:         constants.DefaultMaxUploadBytes,
			ShutdownTimeoutSeconds: 5,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			SampleRatio: 1.0,
		},
		Extractor: ExtractorConfig{
			PDFTimeoutSeconds: 30,
		},
	}
}

// LoadConfig reads the YAML file at configPath over the defaults and
// validates the result. An empty path returns the defaults unchanged.
func LoadConfig(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
