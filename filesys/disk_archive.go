package filesys

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/horizon-emu/horizon/result"
)

// PathMode selects how guest paths are resolved against the mount root.
type PathMode int

const (
	// PathModeFaithful concatenates the mount root with the guest path
	// verbatim, as the reference hardware contract does. Parent-directory
	// segments can escape the mount root; emulation callers may depend on
	// this.
	PathModeFaithful PathMode = iota

	// PathModeHardened cleans the guest path and confines it to the
	// mount root; escape attempts resolve to NotFound.
	PathModeHardened
)

// Options tune a DiskArchive away from the faithful defaults.
type Options struct {
	PathMode     PathMode
	StrictResize bool
}

// FreeBytes is the nominal capacity reported for emulated media; real
// free-space accounting is not modeled.
const FreeBytes = 1 << 30

// DiskArchive exposes one host directory as a guest archive. It holds an
// immutable mount root and is otherwise stateless: files and directories
// it produces are independently owned by the caller.
type DiskArchive struct {
	fs         afero.Fs
	mountPoint string
	opts       Options
	log        *zap.Logger
}

var _ ArchiveBackend = (*DiskArchive)(nil)

// NewDiskArchive mounts hostRoot as a guest archive.
func NewDiskArchive(fsys afero.Fs, hostRoot string, opts Options, log *zap.Logger) *DiskArchive {
	return &DiskArchive{
		fs:         fsys,
		mountPoint: hostRoot,
		opts:       opts,
		log:        log,
	}
}

// GetName identifies the archive in diagnostics.
func (a *DiskArchive) GetName() string {
	return "DiskArchive: " + a.mountPoint
}

// resolve maps a guest path to a host path. In hardened mode ok=false
// signals an escape attempt.
func (a *DiskArchive) resolve(p Path) (string, bool) {
	if a.opts.PathMode == PathModeFaithful {
		return a.mountPoint + p.String(), true
	}

	root := filepath.Clean(a.mountPoint)
	full := filepath.Join(root, p.String())
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		a.log.Warn("guest path escapes the mount root",
			zap.String("path", p.DebugStr()))
		return "", false
	}
	return full, true
}

// OpenFile opens (and with ModeCreate, creates) a guest file.
func (a *DiskArchive) OpenFile(p Path, mode Mode) result.Val[FileBackend] {
	a.log.Debug("called",
		zap.String("path", p.DebugStr()),
		zap.String("mode", mode.Hex()))

	host, ok := a.resolve(p)
	if !ok {
		return result.Err[FileBackend](ErrNotFound)
	}

	file := NewDiskFile(a.fs, host, mode, a.opts.StrictResize, a.log)
	if rc := file.Open(); rc.IsError() {
		return result.Err[FileBackend](rc)
	}
	return result.Ok[FileBackend](file)
}

// DeleteFile removes a guest file. Directories are refused with
// NotAFile; missing paths with NotFound.
func (a *DiskArchive) DeleteFile(p Path) result.Code {
	host, ok := a.resolve(p)
	if !ok {
		return ErrNotFound
	}

	if isDir, _ := afero.IsDir(a.fs, host); isDir {
		return ErrNotAFile
	}
	if exists, _ := afero.Exists(a.fs, host); !exists {
		return ErrNotFound
	}
	if err := a.fs.Remove(host); err != nil {
		return ErrNotAFile
	}
	return result.Success
}

// RenameFile moves a guest file within the archive.
func (a *DiskArchive) RenameFile(src, dst Path) bool {
	srcHost, ok := a.resolve(src)
	if !ok {
		return false
	}
	dstHost, ok := a.resolve(dst)
	if !ok {
		return false
	}
	return a.fs.Rename(srcHost, dstHost) == nil
}

// DeleteDirectory removes one guest directory.
func (a *DiskArchive) DeleteDirectory(p Path) bool {
	host, ok := a.resolve(p)
	if !ok {
		return false
	}
	if isDir, _ := afero.IsDir(a.fs, host); !isDir {
		return false
	}
	return a.fs.Remove(host) == nil
}

// CreateFile creates a guest file of the requested logical size. Nonzero
// sizes are produced sparsely: seek to size-1 and write a single zero
// byte, leaving allocation to the host filesystem.
func (a *DiskArchive) CreateFile(p Path, size uint64) result.Code {
	host, ok := a.resolve(p)
	if !ok {
		return ErrNotFound
	}

	if isDir, _ := afero.IsDir(a.fs, host); isDir {
		return ErrNotAFile
	}
	if exists, _ := afero.Exists(a.fs, host); exists {
		return ErrAlreadyExists
	}

	if size == 0 {
		file, err := a.fs.Create(host)
		if err != nil {
			return ErrTooLarge
		}
		file.Close()
		return result.Success
	}

	file, err := a.fs.OpenFile(host, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return ErrTooLarge
	}
	defer file.Close()

	if _, err := file.Seek(int64(size-1), io.SeekStart); err != nil {
		return ErrTooLarge
	}
	if n, err := file.Write([]byte{0}); err != nil || n != 1 {
		return ErrTooLarge
	}
	return result.Success
}

// CreateDirectory creates one guest directory.
func (a *DiskArchive) CreateDirectory(p Path) bool {
	host, ok := a.resolve(p)
	if !ok {
		return false
	}
	return a.fs.Mkdir(host, 0o755) == nil
}

// RenameDirectory moves a guest directory within the archive.
func (a *DiskArchive) RenameDirectory(src, dst Path) bool {
	return a.RenameFile(src, dst)
}

// OpenDirectory snapshots a guest directory. ok=false when the path does
// not name a directory.
func (a *DiskArchive) OpenDirectory(p Path) (DirectoryBackend, bool) {
	a.log.Debug("called", zap.String("path", p.DebugStr()))

	host, ok := a.resolve(p)
	if !ok {
		return nil, false
	}

	dir := NewDiskDirectory(a.fs, host, a.log)
	if !dir.Open() {
		return nil, false
	}
	return dir, true
}

// GetFreeBytes reports the fixed nominal capacity.
func (a *DiskArchive) GetFreeBytes() uint64 {
	return FreeBytes
}
