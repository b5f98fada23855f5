package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/tracker/internal/backup"
	"github.com/julianstephens/tracker/internal/constants"
	"github.com/julianstephens/tracker/internal/engine"
	"github.com/julianstephens/tracker/internal/logger"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage"
	"github.com/julianstephens/tracker/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
	Out    io.Writer
	In     io.Reader
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// PerformAutomaticBackup backs up file-based stores and only logs on failure
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		logger.Debug("Skipping automatic backup, store is not a local file", "path", path)
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDate resolves a YYYY-MM-DD flag value in the engine location; empty means today
func (c *Context) ParseDate(value string) (time.Time, error) {
	if value == "" {
		return c.Engine.Today(), nil
	}
	return utils.ParseDateInLocation(value, c.Engine.Location())
}

// ParseWeekdays parses a comma-separated list of weekdays into a schedule.
// An empty string yields an irregular (empty) schedule.
func ParseWeekdays(s string) (models.Schedule, error) {
	if strings.TrimSpace(s) == "" {
		return models.NewSchedule(), nil
	}
	if strings.EqualFold(strings.TrimSpace(s), "daily") {
		return models.NewSchedule(models.AllWeekdays...), nil
	}

	var days []models.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := models.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
	}
	return models.NewSchedule(days...), nil
}

// FormatDays renders a completion count as "1 day" or "n days"
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// ResolveConfig picks the store location. An explicit --config wins. When the
// default path is in effect, a connection string from the environment and
// then the keyring takes precedence over the default SQLite file.
func ResolveConfig(config string, getenv func(string) string, keyringLookup func() string) string {
	if config != "" && config != constants.DefaultConfigPath {
		return config
	}
	if connStr := getenv(constants.EnvDBConnection); connStr != "" {
		return connStr
	}
	if keyringLookup != nil {
		if connStr := keyringLookup(); connStr != "" {
			return connStr
		}
	}
	return constants.DefaultConfigPath
}
