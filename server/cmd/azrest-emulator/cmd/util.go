// Package cmd provides maintenance commands for azrest-emulator.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yaroslav/azrest/server/internal/logging"
)

const usage = `util command requires a subcommand

Available subcommands:
  compact-db   Compact and optimize the database
  new-token    Generate a bearer token for the emulator`

// ExecuteUtil runs a utility command with the given arguments.
func ExecuteUtil(args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	subcommand := args[0]
	subArgs := args[1:]

	switch subcommand {
	case "compact-db":
		return ExecuteCompactDB(subArgs)
	case "new-token":
		return ExecuteNewToken(subArgs)
	default:
		return fmt.Errorf("unknown util subcommand: %s", subcommand)
	}
}

// newLogger returns a console logger for utility commands.
func newLogger(verbose bool) (*zap.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logging.NewLogger(logging.Config{Level: level, DevMode: true})
}

// getEnv retrieves an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
