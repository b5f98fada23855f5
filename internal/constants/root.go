package constants

const (
	AppName            = "tracker"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tracker/tracker.db"
	Version            = "v0.3.0"

	// DateFormat is the day key format used for records and CLI input (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxTrackerNameLength is the rune limit the creation form enforces on tracker names
	MaxTrackerNameLength = 38

	// Environment variables
	EnvConfig       = "TRACKER_CONFIG"
	EnvTimezone     = "TRACKER_TIMEZONE"
	EnvDBConnection = "TRACKER_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tracker-"
	BackupFileSuffix = ".db"

	// Log constants
	LogDirName    = "logs"
	LogFileName   = "tracker.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	PostgresSchema  = AppName
	DefaultTimezone = "Local"
)
