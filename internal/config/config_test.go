package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_DEV", "SEVENZIP", "SUDO", "EXTENDED_PATHS"} {
		key := Prefix + "_" + k
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOCOMMONS_LOG_LEVEL", "debug")
	t.Setenv("GOCOMMONS_SUDO", "false")
	t.Setenv("GOCOMMONS_SEVENZIP", "/opt/7z/7zz")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{LogLevel: "debug", SevenZip: "/opt/7z/7zz", Sudo: false}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOCOMMONS_LOG_LEVEL", "warn")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "GOCOMMONS_LOG_LEVEL=error\nGOCOMMONS_EXTENDED_PATHS=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want the environment to win over the file", cfg.LogLevel)
	}
	if !cfg.ExtendedPaths {
		t.Error("ExtendedPaths should be read from the file")
	}
}

func TestLoadOrDefault_BadValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOCOMMONS_SUDO", "sometimes")
	if diff := cmp.Diff(Default(), LoadOrDefault("")); diff != "" {
		t.Errorf("LoadOrDefault() mismatch (-want +got):\n%s", diff)
	}
}
