package cliconfig

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// LoadBody returns the request body described by cfg: nil when neither data
// nor data-file is set, otherwise the JSON document as a raw message so it
// is sent as written.
func LoadBody(cfg Config) (any, error) {
	raw := cfg.Data
	source := "data"
	if cfg.DataFile != "" {
		b, err := os.ReadFile(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		raw = string(b)
		source = cfg.DataFile
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("%s is not valid JSON", source)
	}
	return json.RawMessage(raw), nil
}
