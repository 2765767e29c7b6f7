package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Method != "GET" {
		t.Errorf("Method = %v, want GET", cfg.Method)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.PollInterval != 0 {
		t.Errorf("PollInterval = %v, want 0", cfg.PollInterval)
	}
	if cfg.Headers != nil {
		t.Errorf("Headers = %v, want nil", cfg.Headers)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.URL = "http://localhost:9999/echo"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid minimal config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.URL = "  " },
			wantErr: true,
		},
		{
			name:    "empty method",
			mutate:  func(c *Config) { c.Method = "" },
			wantErr: true,
		},
		{
			name:    "custom method is accepted",
			mutate:  func(c *Config) { c.Method = "PURGE" },
			wantErr: false,
		},
		{
			name: "data and data file together",
			mutate: func(c *Config) {
				c.Data = `{}`
				c.DataFile = "/tmp/body.json"
			},
			wantErr: true,
		},
		{
			name:    "watch without data file",
			mutate:  func(c *Config) { c.Watch = true },
			wantErr: true,
		},
		{
			name: "watch with data file",
			mutate: func(c *Config) {
				c.Watch = true
				c.DataFile = "/tmp/body.json"
			},
			wantErr: false,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "negative http timeout",
			mutate:  func(c *Config) { c.HTTPTimeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "negative poll interval",
			mutate:  func(c *Config) { c.PollInterval = -time.Millisecond },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateTrims(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "  http://localhost/x \n"
	cfg.Method = " POST "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.URL != "http://localhost/x" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Method != "POST" {
		t.Errorf("Method = %q", cfg.Method)
	}
}

func TestConfigSetter(t *testing.T) {
	s := newConfigSetter(map[string]bool{"method": true})

	method := "GET"
	s.setString("method", "POST", &method)
	if method != "GET" {
		t.Errorf("changed flag overwritten: %q", method)
	}

	url := "old"
	s.setString("url", "", &url)
	if url != "old" {
		t.Errorf("empty value applied: %q", url)
	}

	src := []string{"A: 1"}
	var headers []string
	s.setStrings("header", src, &headers)
	src[0] = "B: 2"
	if len(headers) != 1 || headers[0] != "A: 1" {
		t.Errorf("headers = %v, want copy of source", headers)
	}

	var d time.Duration
	if err := s.setDuration("timeout", "bogus", &d); err == nil {
		t.Error("setDuration() expected error for bogus value")
	}
}
