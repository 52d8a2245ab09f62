package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	UpstreamMaxConnsPerHost = 100
	UpstreamIdleConnTimeout = 1 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	RecentLookupDefaultLimit = 10
	RecentLookupMaxLimit     = 50
)

// KickerPosition is the normalized roster position the tracker isolates.
const KickerPosition = "K"
