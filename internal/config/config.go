// Package config loads the server's environment-derived settings.
// Grounded on joeycumines-MacosUseSDK/internal/config/config.go's
// getEnv/getEnvAsInt/getEnvAsDuration helpers and validate-once-at-load
// shape; the defaults themselves (default host/port, size caps, the run
// flow's launch-readiness window) are this service's own.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds settings the server reads once at startup. Everything here
// has a -mandated default; environment variables only override it
// for local development and tests, never for wire-protocol behavior.
type Config struct {
	// Host and Port are the HTTP bind address ( default
	// 127.0.0.1:7676). Port 0 means "pick a free ephemeral port".
	Host string
	Port int

	// Debug raises the request-log middleware to slog.LevelDebug.
	Debug bool

	// BodyLimitBytes caps ordinary JSON request bodies (typically 10 KiB).
	// TypeBodyLimitBytes is the wider cap /type alone permits (100 KiB,
	// for large pasted text).
	BodyLimitBytes     int64
	TypeBodyLimitBytes int64

	// LaunchReadyTimeout bounds how long the lifecycle coordinator waits
	// for a freshly launched app's process to appear (~5s).
	LaunchReadyTimeout time.Duration

	// WatchdogInterval is how often the lifecycle coordinator polls the
	// target app's liveness (once per second).
	WatchdogInterval time.Duration
}

// Load reads settings from the environment, applying this service's
// defaults for anything unset.
func Load() (*Config, error) {
	port, err := getEnvAsInt("MACUI_AGENT_PORT", 7676)
	if err != nil {
		return nil, err
	}
	launchReady, err := getEnvAsDuration("MACUI_AGENT_LAUNCH_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	watchdog, err := getEnvAsDuration("MACUI_AGENT_WATCHDOG_INTERVAL", time.Second)
	if err != nil {
		return nil, err
	}
	bodyLimit, err := getEnvAsInt("MACUI_AGENT_BODY_LIMIT_BYTES", 10*1024)
	if err != nil {
		return nil, err
	}
	typeBodyLimit, err := getEnvAsInt("MACUI_AGENT_TYPE_BODY_LIMIT_BYTES", 100*1024)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:               getEnv("MACUI_AGENT_HOST", "127.0.0.1"),
		Port:               port,
		Debug:              getEnvAsBool("MACUI_AGENT_DEBUG", false),
		BodyLimitBytes:      int64(bodyLimit),
		TypeBodyLimitBytes:  int64(typeBodyLimit),
		LaunchReadyTimeout:  launchReady,
		WatchdogInterval:    watchdog,
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d out of range", cfg.Port)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v == "true" || v == "1" || v == "yes"
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected integer)", key, v)
	}
	return n, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected duration, e.g. '5s')", key, v)
	}
	return d, nil
}
