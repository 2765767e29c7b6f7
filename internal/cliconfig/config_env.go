package cliconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads XREQ_* variables from a dotenv file. Variables already
// present in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (XREQ_*).
// It respects flags that have been explicitly set (changed map).
// XREQ_HEADERS holds one "Key: Value" pair per line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", os.Getenv("XREQ_URL"), &cfg.URL)
	s.setString("method", os.Getenv("XREQ_METHOD"), &cfg.Method)
	s.setStrings("header", splitLines(os.Getenv("XREQ_HEADERS")), &cfg.Headers)
	s.setBodySource(os.Getenv("XREQ_DATA"), os.Getenv("XREQ_DATA_FILE"), cfg)
	s.setString("log-level", os.Getenv("XREQ_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv("XREQ_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("http-timeout", os.Getenv("XREQ_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("poll", os.Getenv("XREQ_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("XREQ_WATCH"), &cfg.Watch)

	return nil
}

func splitLines(v string) []string {
	var out []string
	for _, line := range strings.Split(v, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
