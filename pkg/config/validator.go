package config

import (
	"fmt"
	"strings"
)

// ValidateConfig validates the complete configuration
func (c *Config) ValidateConfig() error {
	if c.Server != nil {
		if err := c.Server.Validate(); err != nil {
			return err
		}
	}

	if c.App != nil {
		if err := c.App.Validate(); err != nil {
			return err
		}
	}

	if c.Store != nil {
		if err := c.Store.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrStoreConfig, err)
		}
	}

	if c.Sink != nil {
		if err := c.Sink.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrSinkConfig, err)
		}
	}

	if c.Geocoder != nil {
		if err := c.Geocoder.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrGeocoderConfig, err)
		}
	}

	if c.Leads != nil {
		if err := c.Leads.Validate(); err != nil {
			return err
		}
	}

	if c.Session != nil {
		if err := c.Session.Validate(); err != nil {
			return err
		}
	}

	if c.RateLimit != nil {
		if err := c.RateLimit.Validate(); err != nil {
			return err
		}
	}

	if c.Scheduler != nil {
		if err := c.Scheduler.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrSchedulerConfig, err)
		}
	}

	return nil
}

// isValidValue checks whether value is in the valid list
func isValidValue(value string, validValues []string) bool {
	for _, valid := range validValues {
		if value == valid {
			return true
		}
	}
	return false
}

// isValidCronExpression does a shallow field-count check, the cron
// library performs the real parse when the job is registered
func isValidCronExpression(cron string) bool {
	fields := strings.Fields(cron)
	return len(fields) == 5 || len(fields) == 6
}
