package constants

import "time"

// Database pool fallbacks, used when the config leaves them at zero.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

const (
	DefaultTimeout        = 10 * time.Second
	DefaultRequestTimeout = 5 * time.Second
	ShutdownTimeout       = 10 * time.Second
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Pagination
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Calendar feed
const (
	CalendarContentType     = "text/calendar; charset=utf-8"
	CalendarTokenLength     = 32
	DefaultCalendarFeedTTL  = 5 * time.Minute
	DefaultCalendarName     = "Marked Shoots"
	DefaultRegenerateCron   = "*/30 * * * *"
	HeaderPublishedTTL      = "X-Published-TTL"
	RedisKeyCalendarToken   = "calendar:token:"
	QueueCalendar           = "calendar"
	WorkerConcurrency       = 5
	RegenerateTaskTimeout   = 30 * time.Second
	RegenerateTaskMaxRetry  = 3
	RegenerateTaskUniqueFor = 10 * time.Second
)
