package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from the given path. An empty path
// falls back to the default search locations, a missing file yields the
// default configuration.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	config := &Config{}
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig writes the configuration to the given path
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath returns the first existing config file location
func getDefaultConfigPath() string {
	paths := []string{
		"./config.yaml",
		"./config.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".zapbytes", "config.yaml"),
			filepath.Join(homeDir, ".zapbytes", "config.json"),
		)
	}

	paths = append(paths,
		"/etc/zapbytes/config.yaml",
		"/etc/zapbytes/config.json",
	)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "./config.yaml"
}

// mergeEnvVars merges environment variables into the configuration
func mergeEnvVars(config *Config) {
	mergeServerEnvVars(config)
	mergeAppEnvVars(config)
	mergeStoreEnvVars(config)
	mergeSinkEnvVars(config)
	mergeGeocoderEnvVars(config)
	mergeLeadsEnvVars(config)
	mergeSessionEnvVars(config)
	mergeContentEnvVars(config)
	mergeSchedulerEnvVars(config)
	mergeRateLimitEnvVars(config)
}

func mergeServerEnvVars(config *Config) {
	if config.Server == nil {
		config.Server = NewServerConfig()
		return
	}

	if port := getEnvInt("SERVER_PORT", 0); port != 0 {
		config.Server.Port = port
	}
	if address := os.Getenv("SERVER_ADDRESS"); address != "" {
		config.Server.Address = address
	}
	if origins := os.Getenv("SERVER_ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = parseStringList(origins)
	}
}

func mergeAppEnvVars(config *Config) {
	if config.App == nil {
		config.App = NewAppConfig()
		return
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.App.LogLevel = logLevel
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		config.App.LogFile = logFile
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Environment = env
	}
}

func mergeStoreEnvVars(config *Config) {
	if config.Store == nil {
		config.Store = NewStoreConfig()
		return
	}

	if driver := os.Getenv("STORE_DRIVER"); driver != "" {
		config.Store.Driver = driver
	}
	if dsn := os.Getenv("STORE_DSN"); dsn != "" {
		config.Store.DSN = dsn
	}
}

func mergeSinkEnvVars(config *Config) {
	if config.Sink == nil {
		config.Sink = NewSinkConfig()
		return
	}

	if url := os.Getenv("SINK_WEBHOOK_URL"); url != "" {
		config.Sink.WebhookURL = url
	}
	if timeout := getEnvInt("SINK_TIMEOUT", 0); timeout != 0 {
		config.Sink.Timeout = timeout
	}
}

func mergeGeocoderEnvVars(config *Config) {
	if config.Geocoder == nil {
		config.Geocoder = NewGeocoderConfig()
		return
	}

	if url := os.Getenv("GEOCODER_BASE_URL"); url != "" {
		config.Geocoder.BaseURL = url
	}
	if timeout := getEnvInt("GEOCODER_TIMEOUT", 0); timeout != 0 {
		config.Geocoder.Timeout = timeout
	}
}

func mergeLeadsEnvVars(config *Config) {
	if config.Leads == nil {
		config.Leads = NewLeadsConfig()
		return
	}

	if area := os.Getenv("LEADS_SERVICE_AREA"); area != "" {
		config.Leads.ServiceArea = parseStringList(area)
	}
}

func mergeSessionEnvVars(config *Config) {
	if config.Session == nil {
		config.Session = NewSessionConfig()
		return
	}

	if ttl := getEnvInt("SESSION_TTL_MINUTES", 0); ttl != 0 {
		config.Session.TTLMinutes = ttl
	}
}

func mergeContentEnvVars(config *Config) {
	if config.Content == nil {
		config.Content = NewContentConfig()
		return
	}

	if path := os.Getenv("CONTENT_CATALOG_PATH"); path != "" {
		config.Content.CatalogPath = path
	}
}

func mergeSchedulerEnvVars(config *Config) {
	if config.Scheduler == nil {
		config.Scheduler = NewSchedulerConfig()
		return
	}

	if enabled := os.Getenv("SCHEDULER_ENABLED"); enabled != "" {
		config.Scheduler.Enabled = enabled == "true" || enabled == "1"
	}
}

func mergeRateLimitEnvVars(config *Config) {
	if config.RateLimit == nil {
		config.RateLimit = NewRateLimitConfig()
		return
	}

	if enabled := os.Getenv("RATE_LIMIT_ENABLED"); enabled != "" {
		config.RateLimit.Enabled = enabled == "true" || enabled == "1"
	}
	if rps := getEnvFloat("RATE_LIMIT_RPS", 0); rps != 0 {
		config.RateLimit.RPS = rps
	}
	if burst := getEnvInt("RATE_LIMIT_BURST", 0); burst != 0 {
		config.RateLimit.Burst = burst
	}
}
