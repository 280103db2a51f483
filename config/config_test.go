package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/horizon-emu/horizon/filesys"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horizon.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[storage]
mount_point = "/data/sdmc"
path_mode = "hardened"
strict_resize = true

[logging]
filter = "*:Warning Service.FS:Debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.MountPoint != "/data/sdmc" {
		t.Errorf("MountPoint = %q", cfg.Storage.MountPoint)
	}
	if cfg.Logging.Filter != "*:Warning Service.FS:Debug" {
		t.Errorf("Filter = %q", cfg.Logging.Filter)
	}

	opts, err := cfg.ArchiveOptions()
	if err != nil {
		t.Fatalf("ArchiveOptions: %v", err)
	}
	if opts.PathMode != filesys.PathModeHardened {
		t.Error("expected hardened path mode")
	}
	if !opts.StrictResize {
		t.Error("expected strict resize")
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
mount_point = "sdmc"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	opts, err := cfg.ArchiveOptions()
	if err != nil {
		t.Fatalf("ArchiveOptions: %v", err)
	}
	if opts.PathMode != filesys.PathModeFaithful {
		t.Error("default path mode must be faithful")
	}
	if opts.StrictResize {
		t.Error("strict resize must default off")
	}
}

func TestLoad_UnknownPathMode(t *testing.T) {
	path := writeConfig(t, `
[storage]
path_mode = "paranoid"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown path_mode")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "[storage\nmount_point =")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}
