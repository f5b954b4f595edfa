package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreframe/macui-agent/internal/config"
	"github.com/coreframe/macui-agent/internal/lifecycle"
	"github.com/coreframe/macui-agent/internal/logging"
	"github.com/coreframe/macui-agent/internal/mainthread"
	"github.com/coreframe/macui-agent/internal/platform"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <app-spec>",
	Short: "Launch or attach to an app and serve the automation API",
	Long: `run resolves app-spec (a display name, .app bundle path, or bundle
identifier) to a running process, attaching to it if already running or
launching it otherwise, binds the HTTP server to it, and emits a single
JSON bootstrap line on stdout once listening:

  {"app":"<display-name>","host":"<host>","pid":<int>,"port":<int>}

The process exits when the target application terminates, when /quit is
called, or on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("host", "", "Bind host (default from MACUI_AGENT_HOST or 127.0.0.1)")
	runCmd.Flags().Int("port", -1, "Bind port, 0 for an ephemeral free port (default from MACUI_AGENT_PORT or 7676)")
}

func runRun(cmd *cobra.Command, args []string) error {
	appSpec := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port >= 0 {
		cfg.Port = port
	}

	logger := logging.New(cfg.Debug)

	provider, err := platform.NewProvider()
	if err != nil {
		return fmt.Errorf("init platform adapters: %w", err)
	}

	exec := mainthread.New()
	defer exec.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := lifecycle.Options{
		AppSpec:            appSpec,
		Host:               cfg.Host,
		Port:               cfg.Port,
		LaunchReadyTimeout: cfg.LaunchReadyTimeout,
		WatchdogInterval:   cfg.WatchdogInterval,
		BodyLimit:          cfg.BodyLimitBytes,
		TypeBodyLimit:      cfg.TypeBodyLimitBytes,
		Provider:           provider,
		Exec:               exec,
		Logger:             logger,
		Stdout:             os.Stdout,
	}

	if err := lifecycle.Run(ctx, opts); err != nil {
		logger.Error("run exited with error", "error", err)
		return err
	}
	return nil
}
