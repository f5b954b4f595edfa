package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MACUI_AGENT_HOST", "MACUI_AGENT_PORT", "MACUI_AGENT_DEBUG",
		"MACUI_AGENT_BODY_LIMIT_BYTES", "MACUI_AGENT_TYPE_BODY_LIMIT_BYTES",
		"MACUI_AGENT_LAUNCH_TIMEOUT", "MACUI_AGENT_WATCHDOG_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want 127.0.0.1", cfg.Host)
	}
	if cfg.Port != 7676 {
		t.Errorf("Port = %d, want 7676", cfg.Port)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false by default")
	}
	if cfg.BodyLimitBytes != 10*1024 {
		t.Errorf("BodyLimitBytes = %d, want 10KiB", cfg.BodyLimitBytes)
	}
	if cfg.TypeBodyLimitBytes != 100*1024 {
		t.Errorf("TypeBodyLimitBytes = %d, want 100KiB", cfg.TypeBodyLimitBytes)
	}
	if cfg.LaunchReadyTimeout != 5*time.Second {
		t.Errorf("LaunchReadyTimeout = %s, want 5s", cfg.LaunchReadyTimeout)
	}
	if cfg.WatchdogInterval != time.Second {
		t.Errorf("WatchdogInterval = %s, want 1s", cfg.WatchdogInterval)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MACUI_AGENT_HOST", "0.0.0.0")
	t.Setenv("MACUI_AGENT_PORT", "9090")
	t.Setenv("MACUI_AGENT_DEBUG", "true")
	t.Setenv("MACUI_AGENT_LAUNCH_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != 9090 || !cfg.Debug {
		t.Errorf("cfg = %+v, want overridden host/port/debug", cfg)
	}
	if cfg.LaunchReadyTimeout != 2*time.Second {
		t.Errorf("LaunchReadyTimeout = %s, want 2s", cfg.LaunchReadyTimeout)
	}
}

func TestLoad_InvalidPort_ReturnsError(t *testing.T) {
	clearEnv(t)
	t.Setenv("MACUI_AGENT_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-numeric port")
	}
}

func TestLoad_PortOutOfRange_ReturnsError(t *testing.T) {
	clearEnv(t)
	t.Setenv("MACUI_AGENT_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a port above 65535")
	}
}

func TestLoad_InvalidDuration_ReturnsError(t *testing.T) {
	clearEnv(t)
	t.Setenv("MACUI_AGENT_WATCHDOG_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable duration")
	}
}
