package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Casefine"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Engine struct {
		// Days an offender has to pay after the fine is issued.
		GraceDays int `envconfig:"PAYMENT_GRACE_DAYS" default:"30"`
		// Months after the offense date until it can no longer be acted upon.
		StatuteMonths int `envconfig:"STATUTE_OF_LIMITATIONS_MONTHS" default:"24"`
		// Spacing between reminder sweeps. The engine itself re-fires on
		// every sweep; the scheduler enforces the interval.
		ReminderIntervalDays int `envconfig:"REMINDER_INTERVAL_DAYS" default:"14"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

// Registry maps the engine knobs onto the registry's config.
func (c *Config) Registry() registry.Config {
	return registry.Config{
		GraceDays:            c.Engine.GraceDays,
		StatuteMonths:        c.Engine.StatuteMonths,
		ReminderIntervalDays: c.Engine.ReminderIntervalDays,
	}
}

// ReminderInterval returns the advisory sweep spacing as a duration.
func (c *Config) ReminderInterval() time.Duration {
	return time.Duration(c.Engine.ReminderIntervalDays) * 24 * time.Hour
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
