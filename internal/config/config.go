package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "daft2trello"

	// DefaultTimeout is the per-request timeout for both the Trello API
	// and listing page fetches. Both services respond within seconds
	// under normal conditions; 30 seconds leaves headroom for slow
	// networks.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies daft2trello in HTTP requests.
	// A descriptive User-Agent is good practice and allows operators
	// to identify tool traffic in their logs.
	DefaultUserAgent = "daft2trello/1.0 (+https://github.com/mkeane/daft2trello)"

	// ConfigFileEnv overrides the configuration file location when set.
	ConfigFileEnv = "DAFT2TRELLORC"

	// CacheFileEnv points at the request cache database. When unset,
	// caching is disabled and every fetch goes to the network.
	CacheFileEnv = "DAFT2TRELLO_CACHEFILE"

	// configFileName is the configuration file name inside the XDG
	// config directory.
	configFileName = "config.yaml"
)

// Config holds all configuration options for daft2trello.
// This struct is populated from the configuration file and CLI flags and
// passed through the application via dependency injection rather than
// global state. Environment lookups happen once at startup; the resolved
// values are threaded into constructors from here.
type Config struct {
	// APIKey is the Trello API key. Treated as an opaque string and
	// forwarded verbatim on every API request.
	APIKey string

	// UserToken is the Trello user token paired with APIKey.
	UserToken string

	// Board is the identifier of the target Trello board. Imported cards
	// are created in the first list of this board.
	Board string

	// CacheFile is the path to the request cache database.
	// Empty disables caching entirely.
	CacheFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Timeout is the per-request timeout for all HTTP operations.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string
}

// NewConfig creates a new Config with default values.
// Credentials and the board are left empty; they come from the
// configuration file written by the configure command.
func NewConfig() *Config {
	return &Config{
		CacheFile: CacheFilePath(),
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// ConfigFilePath returns the configuration file location.
// The DAFT2TRELLORC environment variable takes precedence; otherwise the
// XDG config directory is used (~/.config/daft2trello/config.yaml on
// Linux).
func ConfigFilePath() string {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, AppName, configFileName)
}

// CacheFilePath returns the request cache database location from the
// DAFT2TRELLO_CACHEFILE environment variable, or an empty string when
// caching is disabled.
func CacheFilePath() string {
	return os.Getenv(CacheFileEnv)
}

// Validate checks if the configuration is complete enough to talk to the
// Trello API. It returns a specific error describing what is missing.
//
// We validate once after loading, before any API call, to fail fast with
// a clear message instead of surfacing a 401 from the remote service.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}
	if c.UserToken == "" {
		return ErrNoUserToken
	}
	if c.Board == "" {
		return ErrNoBoard
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
