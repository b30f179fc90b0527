package constant

// Logging
const (
	LogDir      = "logs"
	LogFileName = "plasma.log"
	MaxLogSize  = 10 * 1024 * 1024
	LogPrefix   = "plasma "
)

// Defaults for command-line flags
const (
	DefaultColorMode = "auto"
	DefaultLogLevel  = "info"
	DefaultDensity   = 1
	MaxDensity       = 8
)
