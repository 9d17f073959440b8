// Package config provides configuration management for the cbzpack converter.
package config

// Default configuration values for cbzpack.
const (
	// DefaultOutputDir is the directory archives are written to.
	// Empty means next to each input directory.
	DefaultOutputDir = ""

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultRetentionDays is the default number of days to retain
	// history entries.
	DefaultRetentionDays = 90
)

// DefaultExclusions contains file name patterns excluded from packaging
// by default: comic metadata sidecars and hidden files.
var DefaultExclusions = []string{
	"ComicInfo.xml",
	".*",
}
