package config

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDelimiter is the field delimiter used when none is given.
	// Surveillance exports are overwhelmingly comma-separated.
	DefaultDelimiter = ','

	// AppName is the application name used for XDG directory paths.
	AppName = "episurv"

	// DefaultConfigFile is the default pipeline configuration file name
	// searched for by the run subcommand.
	DefaultConfigFile = ".episurv.yaml"

	// DefaultHistoryLimit is the number of stage runs the history
	// subcommand lists when no limit is given.
	DefaultHistoryLimit = 20
)

// Config holds the options for a single stage invocation.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
type Config struct {
	// InputPath is the file the stage reads.
	InputPath string

	// OutputPath is the file the stage writes.
	OutputPath string

	// Delimiter is the field delimiter for the preprocess stage.
	// Must be a single character. Other stages ignore it.
	Delimiter rune

	// Verbose enables debug-level log output.
	Verbose bool

	// SaveHistory records the stage run in the local history database.
	// Off by default so the stages have no side effect beyond their
	// output file.
	SaveHistory bool

	// DataDir is the directory holding the history database.
	// Defaults to the XDG data directory.
	DataDir string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero
// values because the delimiter default is non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		DataDir:   XDGDataDir(),
	}
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes
// others irrelevant.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}
	if c.OutputPath == "" {
		return ErrNoOutput
	}
	if c.Delimiter == utf8.RuneError || c.Delimiter == 0 {
		return ErrInvalidDelimiter
	}
	return nil
}

// XDGDataDir returns the XDG data directory for episurv.
// On Linux: ~/.local/share/episurv
// On macOS: ~/Library/Application Support/episurv
// On Windows: %LOCALAPPDATA%\episurv
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for episurv.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ParseDelimiter converts the --delimiter flag value into a rune.
// The flag must be exactly one character.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidDelimiter
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
