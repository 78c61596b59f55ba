package constants

// File names
const (
	SettingsFileName = "souffleur.jsonc"
	MainLogFileName  = "souffleur.log"
)

// Directory names
const (
	LogsDirName = "logs"
)

// Network constants
const (
	DefaultSTUNServer = "stun.l.google.com:19302"
	// RouteProbeAddr is only used to pick the outbound interface; nothing is sent to it.
	RouteProbeAddr = "a.root-servers.net:80"
)

// Port field defaults
const (
	DefaultPort    = 8087
	DefaultPortMin = 1024
	DefaultPortMax = 65535
)

// Layout defaults
const (
	DefaultFlowHGap = 16
)

// Application identity
// AppVersion can be overridden at build time using -ldflags="-X souffleur/internal/constants.AppVersion=..."
var (
	AppVersion = "v1.0.0"
)

const (
	AppID   = "eu.thomaskuenneth.souffleur"
	AppName = "Souffleur"
)
