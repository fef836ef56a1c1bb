package version

// Set at build time via -ldflags "-X".
var (
	BuildVersion = "dev"
	BuildCommit  = "none"
	BuildDate    = "unknown"
	SentryDSN    = ""
)
