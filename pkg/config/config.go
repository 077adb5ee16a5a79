package config

// Config is the root configuration structure
type Config struct {
	Server    *ServerConfig    `json:"server" yaml:"server"`
	App       *AppConfig       `json:"app" yaml:"app"`
	Store     *StoreConfig     `json:"store" yaml:"store"`
	Sink      *SinkConfig      `json:"sink" yaml:"sink"`
	Geocoder  *GeocoderConfig  `json:"geocoder" yaml:"geocoder"`
	Leads     *LeadsConfig     `json:"leads" yaml:"leads"`
	Session   *SessionConfig   `json:"session" yaml:"session"`
	Content   *ContentConfig   `json:"content" yaml:"content"`
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	RateLimit *RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
}

// getDefaultConfig returns a configuration with every section at its defaults
func getDefaultConfig() *Config {
	return &Config{
		Server:    NewServerConfig(),
		App:       NewAppConfig(),
		Store:     NewStoreConfig(),
		Sink:      NewSinkConfig(),
		Geocoder:  NewGeocoderConfig(),
		Leads:     NewLeadsConfig(),
		Session:   NewSessionConfig(),
		Content:   NewContentConfig(),
		Scheduler: NewSchedulerConfig(),
		RateLimit: NewRateLimitConfig(),
	}
}

// GetSinkConfig returns the sink section, defaulted when absent
func (c *Config) GetSinkConfig() *SinkConfig {
	if c.Sink != nil {
		return c.Sink
	}
	return NewSinkConfig()
}

// GetGeocoderConfig returns the geocoder section, defaulted when absent
func (c *Config) GetGeocoderConfig() *GeocoderConfig {
	if c.Geocoder != nil {
		return c.Geocoder
	}
	return NewGeocoderConfig()
}

// GetLeadsConfig returns the leads section, defaulted when absent
func (c *Config) GetLeadsConfig() *LeadsConfig {
	if c.Leads != nil {
		return c.Leads
	}
	return NewLeadsConfig()
}

// GetSessionConfig returns the session section, defaulted when absent
func (c *Config) GetSessionConfig() *SessionConfig {
	if c.Session != nil {
		return c.Session
	}
	return NewSessionConfig()
}

// GetStoreConfig returns the store section, defaulted when absent
func (c *Config) GetStoreConfig() *StoreConfig {
	if c.Store != nil {
		return c.Store
	}
	return NewStoreConfig()
}
