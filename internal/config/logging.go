package config

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures the global slog logger based on args.
// Returns the log file sink (caller must close it) or nil if no file.
func SetupLogging(args Args) (io.Closer, error) {
	var writers []io.Writer
	var sink io.Closer

	// Add rotating file writer if specified
	if args.Log != "" {
		lj := &lumberjack.Logger{
			Filename:   args.Log,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		sink = lj
		writers = append(writers, lj)
	}

	// Diagnostics go to stderr; stdout stays reserved for probe output
	writers = append(writers, os.Stderr)

	// Combine writers if multiple
	var output io.Writer
	if len(writers) == 1 {
		output = writers[0]
	} else {
		output = io.MultiWriter(writers...)
	}

	// Parse log level
	logLevel := parseLogLevel(args.LogLevel)

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	if opts.Level == slog.LevelDebug {
		opts.AddSource = true
	}

	var handler slog.Handler
	if args.Json {
		// JSON mode gets JSON-formatted logs
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	// Set as default logger
	slog.SetDefault(slog.New(handler))

	return sink, nil
}

// parseLogLevel converts string to slog.Level
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
