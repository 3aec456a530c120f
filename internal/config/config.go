package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

// AppConfig contains process-wide settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Timezone is the IANA zone used to decide what "today" is. "Local" uses
	// the system zone.
	Timezone string `mapstructure:"timezone" validate:"required,location"`
}

// StoreConfig contains birthday storage settings.
type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// OutputConfig contains presentation settings.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// Location resolves the configured time zone.
func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
