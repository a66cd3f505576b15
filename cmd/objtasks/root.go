package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Pavel0606/mitso-core-js/pkg/config"
	"github.com/Pavel0606/mitso-core-js/pkg/environment"
	"github.com/Pavel0606/mitso-core-js/pkg/logger"
)

var (
	logLevel  string
	logFormat string

	log = slog.New(slog.DiscardHandler)
)

type commandKey struct{}

var rootCmd = &cobra.Command{
	Use:   "objtasks",
	Short: "Shapes, JSON prototypes and CSS selectors from the command line",
	Long: `objtasks exposes the shape, jsonx and cssselector packages as commands.

Results are printed to stdout; logs go to stderr. Configuration is read from
APP_ENV, SERVICE_NAME, LOG_LEVEL and LOG_FORMAT, or from a .env file in the
working directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, text)")

	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(selectorCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup loads settings, builds the logger and stores the environment and
// command path in the command context. Flags override environment settings.
func setup(cmd *cobra.Command, _ []string) error {
	var s Settings
	if err := config.Load(&s); err != nil {
		return err
	}

	opts, err := loggerOptions(s, cmd)
	if err != nil {
		return err
	}
	log = logger.New(opts...)

	ctx := commandContext(cmd)
	ctx = environment.WithContext(ctx, environment.Parse(s.Env))
	ctx = context.WithValue(ctx, commandKey{}, cmd.CommandPath())
	cmd.SetContext(ctx)

	log.DebugContext(ctx, "command started")
	if environment.IsDevelopment(ctx) {
		log.DebugContext(ctx, "settings loaded",
			slog.String("log_level", s.LogLevel),
			slog.String("log_format", s.LogFormat),
		)
	}
	return nil
}

func loggerOptions(s Settings, cmd *cobra.Command) ([]logger.Option, error) {
	level, format := s.LogLevel, s.LogFormat
	if logLevel != "" {
		level = logLevel
	}
	if logFormat != "" {
		format = logFormat
	}

	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(s.Env), s.ServiceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("command", commandKey{}),
	}
	if level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(l))
	}
	if format != "" {
		f, err := logger.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return opts, nil
}

// commandContext returns the command's context, or Background when the
// command was invoked without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
