package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/horizon-emu/horizon/filesys"
)

// Config is the top-level configuration file layout.
type Config struct {
	Storage Storage `toml:"storage"`
	Logging Logging `toml:"logging"`
}

// Storage configures the mounted guest archive.
type Storage struct {
	// MountPoint is the host directory exposed to the guest.
	MountPoint string `toml:"mount_point"`

	// PathMode selects "faithful" (reference-accurate concatenation,
	// traversal possible) or "hardened" (cleaned and root-confined)
	// guest path resolution. Empty means faithful.
	PathMode string `toml:"path_mode"`

	// StrictResize makes file resizes report their real outcome instead
	// of the reference behavior of always reporting success.
	StrictResize bool `toml:"strict_resize"`
}

// Logging configures the category loggers.
type Logging struct {
	// Filter is a space-separated list of "<name>:<level>" entries, e.g.
	// "*:Warning Service.FS:Debug".
	Filter string `toml:"filter"`
}

// Load reads and decodes a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.ArchiveOptions(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ArchiveOptions maps the storage section onto archive options.
func (c *Config) ArchiveOptions() (filesys.Options, error) {
	opts := filesys.Options{StrictResize: c.Storage.StrictResize}

	switch c.Storage.PathMode {
	case "", "faithful":
		opts.PathMode = filesys.PathModeFaithful
	case "hardened":
		opts.PathMode = filesys.PathModeHardened
	default:
		return filesys.Options{}, fmt.Errorf("unknown path_mode %q (want faithful or hardened)", c.Storage.PathMode)
	}
	return opts, nil
}
