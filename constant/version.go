package constant

var (
	Version   = "unknown"
	BuildTime = "unknown"
)
