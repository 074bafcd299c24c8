// Package logging provides structured logging utilities.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pouch-cost/core/types"
)

// Logger is the global logger. The engine never logs; the CLI, the API,
// the job loader and the scenario runner do.
var Logger *zap.Logger

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `json:"level" toml:"level" yaml:"level"`

	// Format is console or json
	Format string `json:"format" toml:"format" yaml:"format"`

	// Output is stdout, stderr or a file path
	Output string `json:"output" toml:"output" yaml:"output"`

	// Development adds stack traces to errors
	Development bool `json:"development" toml:"development" yaml:"development"`
}

// DefaultConfig logs info and above to stderr, keeping stdout for reports
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize replaces the global logger with one built from cfg. An
// unknown level falls back to info.
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	sink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	SetLogger(zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, level), opts...))
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil
	}
	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(file), nil
}

// SetLogger replaces the global logger; tests use it to observe output
func SetLogger(l *zap.Logger) {
	Logger = l
}

// Sync flushes the logger
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// JobFields describes a pouch job for log lines
func JobFields(req types.ProductRequirements) []zap.Field {
	fields := []zap.Field{
		zap.String("pouch_type", string(req.PouchType)),
		zap.Float64("width_mm", req.WidthMM),
		zap.Float64("height_mm", req.HeightMM),
		zap.Int("layers", len(req.FilmStructure.Layers)),
		zap.Int("colors", req.NumberOfColors),
	}
	if req.Quantity != nil {
		fields = append(fields, zap.Stringer("quantity", req.Quantity))
	}
	return fields
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func init() {
	_ = Initialize(DefaultConfig())
}
