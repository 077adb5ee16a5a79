package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ServerConfig represents HTTP server configuration settings
type ServerConfig struct {
	Port           int      `json:"port" yaml:"port"`
	Address        string   `json:"address" yaml:"address"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// AppConfig represents application configuration settings
type AppConfig struct {
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	Environment string `json:"environment" yaml:"environment"`
}

// StoreConfig represents visitor store configuration settings
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver"` // sqlite, memory
	DSN    string `json:"dsn" yaml:"dsn"`
}

// SinkConfig represents the submission sink configuration
type SinkConfig struct {
	WebhookURL string `json:"webhook_url" yaml:"webhook_url"`
	Timeout    int    `json:"timeout" yaml:"timeout"` // seconds
}

// GeocoderConfig represents reverse geocoding configuration
type GeocoderConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Timeout int    `json:"timeout" yaml:"timeout"` // seconds
}

// LeadsConfig represents lead capture configuration
type LeadsConfig struct {
	ServiceArea []string `json:"service_area" yaml:"service_area"`
}

// SessionConfig represents session and fallback configuration
type SessionConfig struct {
	TTLMinutes int `json:"ttl_minutes" yaml:"ttl_minutes"`
}

// ContentConfig represents marketing content configuration
type ContentConfig struct {
	CatalogPath string `json:"catalog_path" yaml:"catalog_path"`
}

// RateLimitConfig represents per-IP rate limiting for submission routes
type RateLimitConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	RPS     float64 `json:"rps" yaml:"rps"`
	Burst   int     `json:"burst" yaml:"burst"`
}

// SchedulerConfig represents the scheduler configuration
type SchedulerConfig struct {
	Enabled bool           `json:"enabled" yaml:"enabled"`
	Jobs    []ScheduledJob `json:"jobs" yaml:"jobs"`
}

// ScheduledJob represents a scheduled job configuration
type ScheduledJob struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Cron string `json:"cron" yaml:"cron"`
}

// Scheduled job types
const (
	JobTypeAbandonmentSweep = "abandonment_sweep"
)

// NewServerConfig creates a server configuration with default values populated from environment variables
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:           getEnvInt("SERVER_PORT", 8080),
		Address:        getEnv("SERVER_ADDRESS", "0.0.0.0"),
		AllowedOrigins: parseStringList(getEnv("SERVER_ALLOWED_ORIGINS", "")),
	}
}

// NewAppConfig creates an application configuration with default values populated from environment variables
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		Environment: getEnv("APP_ENV", "production"),
	}
}

// NewStoreConfig creates a store configuration with default values populated from environment variables
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Driver: getEnv("STORE_DRIVER", "sqlite"),
		DSN:    getEnv("STORE_DSN", "./data/zapbytes.db"),
	}
}

// NewSinkConfig creates a sink configuration with default values populated from environment variables
func NewSinkConfig() *SinkConfig {
	return &SinkConfig{
		WebhookURL: getEnv("SINK_WEBHOOK_URL", ""),
		Timeout:    getEnvInt("SINK_TIMEOUT", 15),
	}
}

// NewGeocoderConfig creates a geocoder configuration with default values populated from environment variables
func NewGeocoderConfig() *GeocoderConfig {
	return &GeocoderConfig{
		BaseURL: getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		Timeout: getEnvInt("GEOCODER_TIMEOUT", 10),
	}
}

// NewLeadsConfig creates a leads configuration with default values populated from environment variables
func NewLeadsConfig() *LeadsConfig {
	return &LeadsConfig{
		ServiceArea: parseStringList(getEnv("LEADS_SERVICE_AREA", "")),
	}
}

// NewSessionConfig creates a session configuration with default values populated from environment variables
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		TTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 30),
	}
}

// NewContentConfig creates a content configuration with default values populated from environment variables
func NewContentConfig() *ContentConfig {
	return &ContentConfig{
		CatalogPath: getEnv("CONTENT_CATALOG_PATH", ""),
	}
}

// NewRateLimitConfig creates a rate limit configuration with default values populated from environment variables
func NewRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RPS:     getEnvFloat("RATE_LIMIT_RPS", 1),
		Burst:   getEnvInt("RATE_LIMIT_BURST", 5),
	}
}

// NewSchedulerConfig creates a scheduler configuration with default values populated from environment variables
func NewSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Enabled: getEnvBool("SCHEDULER_ENABLED", true),
		Jobs:    []ScheduledJob{},
	}
}

// Validate validates server configuration
func (sc *ServerConfig) Validate() error {
	if sc.Port <= 0 || sc.Port > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535", ErrInvalidValue)
	}

	if sc.Address == "" {
		sc.Address = "0.0.0.0"
	}

	return nil
}

// Validate validates application configuration
func (ac *AppConfig) Validate() error {
	if ac.LogLevel != "" {
		validLevels := []string{"debug", "info", "warn", "error", "fatal"}
		if !isValidValue(ac.LogLevel, validLevels) {
			return fmt.Errorf("%w: log_level must be one of %v", ErrInvalidValue, validLevels)
		}
	}

	return nil
}

// Validate validates store configuration
func (sc *StoreConfig) Validate() error {
	if sc.Driver == "" {
		sc.Driver = "sqlite"
	}

	validDrivers := []string{"sqlite", "memory"}
	if !isValidValue(sc.Driver, validDrivers) {
		return fmt.Errorf("%w: driver must be one of %v", ErrInvalidValue, validDrivers)
	}

	if sc.Driver == "sqlite" && sc.DSN == "" {
		return fmt.Errorf("%w: dsn", ErrMissingRequired)
	}

	return nil
}

// Validate validates sink configuration
func (sc *SinkConfig) Validate() error {
	if sc.WebhookURL != "" && !strings.HasPrefix(sc.WebhookURL, "http") {
		return fmt.Errorf("%w: webhook_url must be an HTTP URL", ErrInvalidValue)
	}

	if sc.Timeout <= 0 {
		sc.Timeout = 15
	}

	return nil
}

// Validate validates geocoder configuration
func (gc *GeocoderConfig) Validate() error {
	if gc.BaseURL == "" {
		return fmt.Errorf("%w: base_url", ErrMissingRequired)
	}

	if gc.Timeout <= 0 {
		gc.Timeout = 10
	}

	return nil
}

// Validate validates leads configuration
func (lc *LeadsConfig) Validate() error {
	for _, pincode := range lc.ServiceArea {
		if len(pincode) != 6 {
			return fmt.Errorf("%w: service_area pincode %q", ErrInvalidValue, pincode)
		}
	}

	return nil
}

// Validate validates session configuration
func (sc *SessionConfig) Validate() error {
	if sc.TTLMinutes <= 0 {
		sc.TTLMinutes = 30
	}

	return nil
}

// Validate validates rate limit configuration
func (rc *RateLimitConfig) Validate() error {
	if rc.RPS <= 0 {
		rc.RPS = 1
	}
	if rc.Burst <= 0 {
		rc.Burst = 5
	}

	return nil
}

// Validate validates the scheduler configuration
func (sc *SchedulerConfig) Validate() error {
	if !sc.Enabled {
		return nil // skip validation if not enabled
	}

	for i, job := range sc.Jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("job[%d]: %w", i, err)
		}
	}

	return nil
}

// Validate validates a single scheduled job
func (sj *ScheduledJob) Validate() error {
	if sj.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingRequired)
	}

	if sj.Type == "" {
		return fmt.Errorf("%w: type", ErrMissingRequired)
	}

	validTypes := []string{JobTypeAbandonmentSweep}
	if !isValidValue(sj.Type, validTypes) {
		return fmt.Errorf("%w: type must be one of %v", ErrInvalidValue, validTypes)
	}

	if sj.Cron == "" {
		return fmt.Errorf("%w: cron", ErrMissingRequired)
	}

	// simple cron expression validation
	if !isValidCronExpression(sj.Cron) {
		return fmt.Errorf("%w: %s", ErrInvalidCron, sj.Cron)
	}

	return nil
}

// parseStringList splits a comma-separated environment value
func parseStringList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
