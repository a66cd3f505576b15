// Package logger builds slog loggers from functional options and injects
// attributes pulled from context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "objtasks"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "selector built", logger.Selector("div > #child"))
//
// The default logger writes JSON at info level to stderr. WithEnvironment
// switches development to text at debug level. ParseLevel and ParseFormat
// convert configuration strings into options.
//
// Attribute helpers (Error, Component, Command, Selector, Kind, Count) keep
// key names consistent across commands.
package logger
