// Package config loads the TOML configuration file: the guest storage
// mount point, the path-resolution mode, and the logging filter string.
package config
