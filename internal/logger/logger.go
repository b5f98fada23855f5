// Package logger holds the process-wide structured logger. Every helper is a
// no-op until Init has been called.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/tracker/internal/constants"
)

var Logger *log.Logger

type Config struct {
	// Debug lowers the level to debug and mirrors output to stderr
	Debug bool
	// ConfigDir is where the logs/ directory is created
	ConfigDir string
	// Output replaces the rotating log file when set
	Output io.Writer
}

func Init(cfg Config) error {
	out := cfg.Output
	if out == nil {
		sink, err := rotatingFile(cfg.ConfigDir)
		if err != nil {
			return err
		}
		out = sink
		if cfg.Debug {
			out = io.MultiWriter(os.Stderr, sink)
		}
	}

	opts := log.Options{
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	}
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}
	Logger = log.NewWithOptions(out, opts)
	return nil
}

func rotatingFile(configDir string) (io.Writer, error) {
	dir := filepath.Join(configDir, constants.LogDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.LogFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}, nil
}

func logAt(level log.Level, msg string, keyvals []any) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}

func Debug(msg string, keyvals ...any) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...any)  { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...any)  { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...any) { logAt(log.ErrorLevel, msg, keyvals) }

// Fatal logs at error level and exits with status 1
func Fatal(msg string, keyvals ...any) {
	logAt(log.ErrorLevel, msg, keyvals)
	os.Exit(1)
}
