// Package constant holds application identity and platform identifiers.
package constant

const (
	// App is used for directory names, the config file name and the env prefix.
	App = "movieflix"

	// Brand is the display name.
	Brand = "MovieFlix"

	Version = "0.1.0"
)

// Set at link time via -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
