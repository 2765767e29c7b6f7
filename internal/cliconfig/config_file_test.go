package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				URL:          "http://example.com/api",
				Method:       "POST",
				Headers:      []string{"Content-Type: application/json", "X-Trace: 1"},
				Data:         `{"a":1}`,
				Timeout:      "5s",
				HTTPTimeout:  "30s",
				PollInterval: "25ms",
				LogLevel:     "debug",
				Watch:        &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				URL:          "http://example.com/api",
				Method:       "POST",
				Headers:      []string{"Content-Type: application/json", "X-Trace: 1"},
				Data:         `{"a":1}`,
				Timeout:      5 * time.Second,
				HTTPTimeout:  30 * time.Second,
				PollInterval: 25 * time.Millisecond,
				LogLevel:     "debug",
				Watch:        true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Method:  "PUT",
				Headers: []string{"X-File: 1"},
				Timeout: "9s",
				Watch:   &falseVal,
			},
			changed: map[string]bool{"method": true, "header": true, "timeout": true},
			initial: Config{
				Method:  "DELETE",
				Headers: []string{"X-Flag: 1"},
				Timeout: time.Second,
				Watch:   true,
			},
			expected: Config{
				Method:  "DELETE", // unchanged because flag was set
				Headers: []string{"X-Flag: 1"},
				Timeout: time.Second,
				Watch:   false,
			},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{PollInterval: "fast"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
url = "http://localhost:9999/echo"
method = "POST"
headers = [
  "Content-Type: application/json",
  "Authorization: Bearer abc",
]
data_file = "/tmp/body.json"
timeout = "10s"
poll_interval = "50ms"
watch = true
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.URL != "http://localhost:9999/echo" {
		t.Errorf("URL = %v", fc.URL)
	}
	if fc.Method != "POST" {
		t.Errorf("Method = %v, want POST", fc.Method)
	}
	wantHeaders := []string{"Content-Type: application/json", "Authorization: Bearer abc"}
	if !reflect.DeepEqual(fc.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", fc.Headers, wantHeaders)
	}
	if fc.DataFile != "/tmp/body.json" {
		t.Errorf("DataFile = %v", fc.DataFile)
	}
	if fc.Timeout != "10s" {
		t.Errorf("Timeout = %v, want 10s", fc.Timeout)
	}
	if fc.PollInterval != "50ms" {
		t.Errorf("PollInterval = %v, want 50ms", fc.PollInterval)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Errorf("Watch = %v, want true", fc.Watch)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("method = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() expected error for malformed TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("no home directory available")
	}
	if !strings.HasSuffix(path, filepath.Join(".xreq", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(existing) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nope.txt")) {
		t.Error("FileExists() = true for missing file")
	}
}
