package constants

const (
	DataFormate = "2006-01-02 15:04:05"
)

const (
	DefaultPage  = int64(1)
	DefaultLimit = int64(10)
	MaxLimit     = int64(100)
)

const (
	StatsCacheTTLSeconds = 30
	ToggleLockExpirySec  = 8
)
