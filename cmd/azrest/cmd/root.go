// Package cmd implements the azrest command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yaroslav/azrest/cmd/azrest/config"
)

var (
	// Version information (set at build time via ldflags)
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Output formats accepted by --output.
const (
	outputJSON  = "json"
	outputTable = "table"
)

// options holds the persistent flags and the state resolved from them
// before a subcommand runs.
type options struct {
	configPath   string
	profileName  string
	endpoint     string
	subscription string
	token        string
	logLevel     string
	output       string

	file    *config.File
	profile config.Profile
	logger  *zap.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "azrest",
		Short: "azrest - Azure REST clients from the command line",
		Long: `azrest drives Azure management and data-plane APIs.

Connection settings come from named profiles in the config file, from a
.env file in the working directory, and from flags, in increasing order of
precedence. Point --endpoint at azrest-emulator to work offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to the profiles file")
	flags.StringVarP(&opts.profileName, "profile", "p", "", "Profile to use (default: the file's default_profile)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Override the profile endpoint")
	flags.StringVar(&opts.subscription, "subscription", "", "Override the profile subscription ID")
	flags.StringVar(&opts.token, "token", "", "Bearer token (default: the profile's token variable)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVarP(&opts.output, "output", "o", outputTable, "Output format (json, table)")

	root.AddCommand(
		newVersionCmd(),
		newProfileCmd(opts),
		newRedisCmd(opts),
		newKustoCmd(opts),
		newPubSubCmd(opts),
		newQueueCmd(opts),
		newRolesCmd(opts),
		newSavingsPlansCmd(opts),
		newHelpSolutionCmd(opts),
		newBrowseCmd(opts),
	)
	return root
}

// resolve loads .env and the profiles file, applies flag overrides and
// builds the logger.
func (o *options) resolve() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if o.output != outputJSON && o.output != outputTable {
		return fmt.Errorf("invalid output format %q (want json or table)", o.output)
	}

	logger, err := newLogger(o.logLevel, os.Stderr)
	if err != nil {
		return err
	}
	o.logger = logger

	file, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.file = file

	profile, err := file.Profile(o.profileName)
	if err != nil {
		return err
	}
	if o.endpoint != "" {
		profile.Endpoint = o.endpoint
	}
	if o.subscription != "" {
		if _, err := uuid.Parse(o.subscription); err != nil {
			return fmt.Errorf("--subscription is not a valid UUID: %s", o.subscription)
		}
		profile.SubscriptionID = o.subscription
	}
	o.profile = profile

	logger.Debug("resolved profile",
		zap.String("config", o.configPath),
		zap.String("profile", o.profileName),
		zap.String("endpoint", profile.Endpoint),
	)
	return nil
}

// newLogger builds a console logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

// versionString returns formatted version information.
func versionString() string {
	return fmt.Sprintf("azrest %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
