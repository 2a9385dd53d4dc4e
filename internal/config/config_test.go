package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validTOML = `
[calculator]
reject_zero_weight = true
default_reps = 5

[server]
host = "0.0.0.0"
port = 9090

[output]
format = "json"
color = false
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// clearEnv keeps the developer's shell from leaking into the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"RMCALC_REJECT_ZERO_WEIGHT", "RMCALC_SERVER_HOST", "RMCALC_SERVER_PORT",
		"RMCALC_OUTPUT_FORMAT", "RMCALC_NO_COLOR", "NO_COLOR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadValid(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeTemp(t, validTOML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Calculator.RejectZeroWeight {
		t.Error("calculator.reject_zero_weight = false, want true")
	}
	if cfg.Calculator.DefaultReps != 5 {
		t.Errorf("calculator.default_reps = %d, want 5", cfg.Calculator.DefaultReps)
	}
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("addr = %q, want %q", cfg.Addr(), "0.0.0.0:9090")
	}
	if cfg.Output.Format != "json" || cfg.Output.Color {
		t.Errorf("output = %+v", cfg.Output)
	}
	if !cfg.EngineOptions().RejectZeroWeight {
		t.Error("engine options lost reject_zero_weight")
	}
}

// A partial file keeps the defaults for everything it leaves out.
func TestLoadPartial(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeTemp(t, "[server]\nport = 3000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want default", cfg.Server.Host)
	}
	if cfg.Calculator.RejectZeroWeight {
		t.Error("zero weight should be accepted by default")
	}
	if cfg.Calculator.DefaultReps != 1 || cfg.Output.Format != "table" || !cfg.Output.Color {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("RMCALC_REJECT_ZERO_WEIGHT", "false")
	t.Setenv("RMCALC_SERVER_PORT", "7000")
	t.Setenv("RMCALC_OUTPUT_FORMAT", "yaml")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(writeTemp(t, validTOML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calculator.RejectZeroWeight {
		t.Error("env did not override reject_zero_weight")
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("server.port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("output.format = %q, want yaml", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("NO_COLOR did not disable color")
	}
	// Unchanged fields keep file values.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "[server]\nport = 70000\n"},
		{"reps too high", "[calculator]\ndefault_reps = 11\n"},
		{"unknown format", "[output]\nformat = \"xml\"\n"},
		{"malformed", "[server\nport = 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := Load(writeTemp(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := loadDotEnv(filepath.Join(dir, ".env")); err != nil {
		t.Errorf("missing .env: unexpected error: %v", err)
	}

	good := filepath.Join(dir, "good.env")
	if err := os.WriteFile(good, []byte("RMCALC_TEST_DOTENV=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RMCALC_TEST_DOTENV", "")
	os.Unsetenv("RMCALC_TEST_DOTENV")
	if err := loadDotEnv(good); err != nil {
		t.Fatalf("valid .env: unexpected error: %v", err)
	}
	if got := os.Getenv("RMCALC_TEST_DOTENV"); got != "loaded" {
		t.Errorf("RMCALC_TEST_DOTENV = %q, want loaded", got)
	}

	bad := filepath.Join(dir, "bad.env")
	if err := os.WriteFile(bad, []byte("RMCALC_SERVER_HOST=\"unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loadDotEnv(bad); err == nil {
		t.Error("malformed .env: expected an error")
	}
}
