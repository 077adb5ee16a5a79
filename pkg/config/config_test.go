package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Server == nil || cfg.Server.Port != 8080 {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Geocoder == nil || cfg.Geocoder.BaseURL == "" {
		t.Error("geocoder config should have a default base URL")
	}
	if cfg.Session == nil || cfg.Session.TTLMinutes != 30 {
		t.Errorf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Store == nil || cfg.Store.Driver != "sqlite" {
		t.Errorf("unexpected store defaults: %+v", cfg.Store)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test_config.yaml")

	originalConfig := &Config{
		Server: &ServerConfig{
			Port:    9090,
			Address: "127.0.0.1",
		},
		Sink: &SinkConfig{
			WebhookURL: "https://sheets.example.com/hook",
			Timeout:    20,
		},
		App: &AppConfig{
			LogLevel: "debug",
			LogFile:  "/tmp/test.log",
		},
	}

	if err := SaveConfig(originalConfig, tempFile); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedConfig, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", loadedConfig.Server.Port)
	}
	if loadedConfig.Sink.WebhookURL != originalConfig.Sink.WebhookURL {
		t.Errorf("Expected webhook %s, got %s", originalConfig.Sink.WebhookURL, loadedConfig.Sink.WebhookURL)
	}
	if loadedConfig.App.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", loadedConfig.App.LogLevel)
	}
}

func TestConfigWithEnvVars(t *testing.T) {
	os.Setenv("SINK_WEBHOOK_URL", "https://env.example.com/hook")
	os.Setenv("SERVER_PORT", "9002")
	os.Setenv("LEADS_SERVICE_AREA", "110012, 110085")
	defer func() {
		os.Unsetenv("SINK_WEBHOOK_URL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LEADS_SERVICE_AREA")
	}()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Sink.WebhookURL != "https://env.example.com/hook" {
		t.Errorf("Expected env webhook, got %s", cfg.Sink.WebhookURL)
	}
	if cfg.Server.Port != 9002 {
		t.Errorf("Expected port 9002, got %d", cfg.Server.Port)
	}
	if len(cfg.Leads.ServiceArea) != 2 || cfg.Leads.ServiceArea[0] != "110012" {
		t.Errorf("Expected parsed service area, got %v", cfg.Leads.ServiceArea)
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := getDefaultConfig()
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Server.Port = 0
	if err := cfg.ValidateConfig(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for bad port, got %v", err)
	}
	cfg.Server.Port = 8080

	cfg.Sink.WebhookURL = "not-a-url"
	if err := cfg.ValidateConfig(); !errors.Is(err, ErrSinkConfig) {
		t.Errorf("expected ErrSinkConfig, got %v", err)
	}
	cfg.Sink.WebhookURL = ""

	cfg.Scheduler.Jobs = []ScheduledJob{{Name: "sweep", Type: JobTypeAbandonmentSweep, Cron: "bad"}}
	if err := cfg.ValidateConfig(); !errors.Is(err, ErrSchedulerConfig) {
		t.Errorf("expected ErrSchedulerConfig, got %v", err)
	}
}

func TestScheduledJobValidate(t *testing.T) {
	job := &ScheduledJob{Name: "sweep", Type: JobTypeAbandonmentSweep, Cron: "*/15 * * * *"}
	if err := job.Validate(); err != nil {
		t.Errorf("valid job rejected: %v", err)
	}

	job.Type = "unknown"
	if err := job.Validate(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}
