package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rubiqs/suite/internal/core/config"
	"github.com/rubiqs/suite/internal/tui"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands.
	// It is nil when the file failed to load; commands that need it call
	// RequireConfig.
	Config    *config.Config
	ConfigErr error

	// SessionID tags every log line written during this run
	SessionID string

	Build tui.BuildInfo
}

// RequireConfig returns the loaded config or the error that prevented loading it.
func (f *Flags) RequireConfig() (*config.Config, error) {
	if f.ConfigErr != nil {
		return nil, f.ConfigErr
	}
	if f.Config == nil {
		cfg := config.DefaultConfig()
		cfg.DataDir = f.DataDir
		return &cfg, nil
	}
	return f.Config, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "rubiqs", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "rubiqs")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/rubiqs/rubiqs.log
// On Linux: $XDG_STATE_HOME/rubiqs/rubiqs.log (defaults to ~/.local/state/rubiqs/rubiqs.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "rubiqs", "rubiqs.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "rubiqs", "rubiqs.log")
	}

	return filepath.Join(home, ".local", "state", "rubiqs", "rubiqs.log")
}
