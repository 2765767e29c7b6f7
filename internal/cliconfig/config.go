package cliconfig

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds CLI configuration for xreq.
type Config struct {
	URL      string
	Method   string
	Headers  []string
	Data     string
	DataFile string

	Timeout      time.Duration
	HTTPTimeout  time.Duration
	PollInterval time.Duration

	LogLevel string
	Watch    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Method:   http.MethodGet,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	c.URL = strings.TrimSpace(c.URL)
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}

	c.Method = strings.TrimSpace(c.Method)
	if c.Method == "" {
		return fmt.Errorf("method must not be empty")
	}

	if c.Data != "" && c.DataFile != "" {
		return fmt.Errorf("data and data-file are mutually exclusive")
	}
	if c.Watch && c.DataFile == "" {
		return fmt.Errorf("watch requires data-file")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative")
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings replaces a list if the new one is non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, values []string, dst *[]string) {
	if len(values) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), values...)
}

// setBodySource applies data or dataFile as one setting. The two are
// mutually exclusive, so a flag for either one blocks both, and a value from
// this layer replaces whichever one an earlier layer supplied.
func (s *configSetter) setBodySource(data, dataFile string, cfg *Config) {
	if s.changed["data"] || s.changed["data-file"] {
		return
	}
	switch {
	case data != "" && dataFile != "":
		cfg.Data, cfg.DataFile = data, dataFile
	case dataFile != "":
		cfg.Data, cfg.DataFile = "", dataFile
	case data != "":
		cfg.Data, cfg.DataFile = data, ""
	}
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
