package config

// Application constants
const (
	AppName    = "bikeshare"
	AppVersion = "1.0.0"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. BIKESHARE_DISPLAY_PAGE_SIZE.
	EnvPrefix = "BIKESHARE"

	// File Paths (relative to the working directory)
	DefaultDataDir = "data"
	DefaultLogsDir = "logs"

	// Display
	DefaultPageSize = 5

	// Outlier parameters. IQR bounds are Q1-k*IQR .. Q3+k*IQR with
	// k = DefaultIQRMultiplier; z-score strips rows with |z| above
	// DefaultZScoreLimit.
	DefaultIQRMultiplier = 1.5
	DefaultZScoreLimit   = 3.0
)
