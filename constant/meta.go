// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Radiodl is the canonical application identifier used for filesystem paths and CLI branding.
	Radiodl = "radiodl"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every request to program sites.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is shown above the root help.
//
//go:embed ascii.txt
var AsciiArtLogo string

// runtime.GOOS values with their own file openers.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
