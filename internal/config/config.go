// Package config loads the site configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Default configuration values.
const (
	defaultServiceName   = "portfolio"
	defaultServicePort   = 8080
	defaultVersion       = "0.1.0"
	defaultSiteTitle     = "Pranav Kumar Kashyap - Software Engineer"
	defaultSiteDesc      = "Portfolio of Pranav Kumar Kashyap"
	defaultSiteAuthor    = "Pranav Kumar Kashyap"
	defaultSiteURL       = "https://pranavkumarkashyap.vercel.app"
	defaultTwitter       = "@pranavkumarkashyap"
	defaultAvatar        = "/static/img/avatar.svg"
	defaultLoadingScreen = 2 * time.Second
	defaultFetchTimeout  = 5 * time.Second
	defaultMaxReveal     = 100
	defaultDBPath        = "portfolio.db"
	defaultAdminUser     = "admin"
	defaultRetention     = 365 * 24 * time.Hour
	defaultLoggingLevel  = "info"
	defaultLoggingFmt    = "json"

	minPort = 1
	maxPort = 65535
)

var defaultKeywords = []string{
	"Portfolio", "Backend Development", "Developer", "Pranav Kumar Kashyap",
	"Full Stack Developer", "Go", "Gin", "HTMX",
}

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Animation AnimationConfig `yaml:"animation"`
	Database  DatabaseConfig  `yaml:"database"`
	Admin     AdminConfig     `yaml:"admin"`
	Privacy   PrivacyConfig   `yaml:"privacy"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"PORT"      yaml:"port"`
	Debug   bool   `env:"APP_DEBUG" yaml:"debug"`
}

// SiteConfig drives the page head and the loading overlay.
type SiteConfig struct {
	Title         string        `yaml:"title"`
	Description   string        `yaml:"description"`
	Keywords      []string      `yaml:"keywords"`
	Author        string        `yaml:"author"`
	URL           string        `env:"SITE_URL" yaml:"url"`
	Twitter       string        `yaml:"twitter"`
	Avatar        string        `yaml:"avatar"`
	LoadingScreen time.Duration `yaml:"loading_screen"`
}

// ContentConfig selects where the static JSON is read from. An empty
// BaseURL means the files embedded in the binary.
type ContentConfig struct {
	BaseURL      string        `env:"CONTENT_BASE_URL" yaml:"base_url"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// AnimationConfig bounds the reveal streams.
type AnimationConfig struct {
	MaxItems int `yaml:"max_items"`
}

// DatabaseConfig holds the SQLite settings for the visit log.
type DatabaseConfig struct {
	Path string `env:"DATABASE_PATH" yaml:"path"`
}

// AdminConfig holds the dashboard credentials.
type AdminConfig struct {
	Enabled  bool   `env:"ADMIN_ENABLED"  yaml:"enabled"`
	Username string `env:"ADMIN_USERNAME" yaml:"username"`
	Password string `env:"ADMIN_PASSWORD" yaml:"password"`
}

// PrivacyConfig controls visit tracking.
type PrivacyConfig struct {
	TrackVisits bool          `env:"TRACK_VISITS" yaml:"track_visits"`
	Retention   time.Duration `yaml:"retention"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Load starts from Default, decodes the file at path over it, then applies
// environment overrides. A missing file is not an error; keys the file
// sets, zero values included, replace the defaults.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg := Default()
	if err := readYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:    defaultServiceName,
			Version: defaultVersion,
			Port:    defaultServicePort,
		},
		Site: SiteConfig{
			Title:         defaultSiteTitle,
			Description:   defaultSiteDesc,
			Keywords:      append([]string(nil), defaultKeywords...),
			Author:        defaultSiteAuthor,
			URL:           defaultSiteURL,
			Twitter:       defaultTwitter,
			Avatar:        defaultAvatar,
			LoadingScreen: defaultLoadingScreen,
		},
		Content:   ContentConfig{FetchTimeout: defaultFetchTimeout},
		Animation: AnimationConfig{MaxItems: defaultMaxReveal},
		Database:  DatabaseConfig{Path: defaultDBPath},
		Admin:     AdminConfig{Username: defaultAdminUser},
		Privacy:   PrivacyConfig{Retention: defaultRetention},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFmt,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < minPort || c.Service.Port > maxPort {
		return &ValidationError{Field: "service.port", Message: fmt.Sprintf("must be between %d and %d", minPort, maxPort)}
	}
	if c.Site.LoadingScreen < 0 {
		return &ValidationError{Field: "site.loading_screen", Message: "must not be negative"}
	}
	if c.Content.BaseURL != "" {
		u, err := url.Parse(c.Content.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ValidationError{Field: "content.base_url", Message: "must be an absolute http(s) URL"}
		}
	}
	if c.Content.FetchTimeout < 0 {
		return &ValidationError{Field: "content.fetch_timeout", Message: "must not be negative"}
	}
	if c.Animation.MaxItems < 0 {
		return &ValidationError{Field: "animation.max_items", Message: "must not be negative"}
	}
	if c.Admin.Enabled && c.Admin.Password == "" {
		return &ValidationError{Field: "admin.password", Message: "is required when admin is enabled"}
	}
	if c.Privacy.Retention < 0 {
		return &ValidationError{Field: "privacy.retention", Message: "must not be negative"}
	}
	return nil
}

// NeedsDatabase reports whether any enabled feature uses the visit log.
func (c *Config) NeedsDatabase() bool {
	return c.Privacy.TrackVisits || c.Admin.Enabled
}
