package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = []string{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "mongo"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}

	expected := `database.driver must be "redis" or "valkey", got "mongo"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_KeyPrefix(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.KeyPrefix = "rr:"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for prefix with separator")
	}
}

func TestValidate_Auth(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.HMACSecret = "s"
	cfg.Auth.PublicKeyFile = "key.pem"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for both secret and public key")
	}

	cfg = validConfig()
	cfg.Auth.RequireAdminForStatus = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for admin gate without verification")
	}

	cfg.Auth.HMACSecret = "s"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected Driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "redrelief" {
		t.Errorf("expected KeyPrefix='redrelief', got %q", cfg.Storage.KeyPrefix)
	}
	if !cfg.Storage.ShouldCreateIndexes() {
		t.Error("expected index creation on by default")
	}
	if cfg.RateLimit.Requests != 100 || cfg.RateLimit.WindowSec != 900 || !cfg.RateLimit.IsEnabled() {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Auth.AdminRole != "admin" {
		t.Errorf("expected AdminRole=admin, got %q", cfg.Auth.AdminRole)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 {
		t.Errorf("expected one default origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	off := false
	cfg := Config{
		HTTP:      HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database:  DatabaseConfig{Driver: "valkey", ReadinessTimeout: 15},
		Storage:   StorageConfig{KeyPrefix: "custom", CreateIndexes: &off},
		RateLimit: RateLimitConfig{Enabled: &off, Requests: 5, WindowSec: 60},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("expected Driver=valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "custom" || cfg.Storage.ShouldCreateIndexes() {
		t.Errorf("storage overridden: %+v", cfg.Storage)
	}
	if cfg.RateLimit.IsEnabled() || cfg.RateLimit.Requests != 5 {
		t.Errorf("rate limit overridden: %+v", cfg.RateLimit)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("RR_TEST_ADDR", "cache:6379")

	got := string(expandEnvVars([]byte("a: ${RR_TEST_ADDR}\nb: ${RR_TEST_MISSING:-fallback}\nc: ${RR_TEST_MISSING}")))
	want := "a: cache:6379\nb: fallback\nc: "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "http:\n  port: 9090\ndatabase:\n  driver: valkey\n  addrs: [\"${RR_TEST_DB:-localhost:6379}\"]\nrate_limit:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "unit.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("unit")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 || cfg.Database.Driver != "valkey" || cfg.Database.Addrs[0] != "localhost:6379" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.RateLimit.IsEnabled() {
		t.Error("rate limit should be disabled")
	}
}
