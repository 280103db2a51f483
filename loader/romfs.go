package loader

import (
	"io"

	"go.uber.org/zap"

	"github.com/horizon-emu/horizon/filesys"
	"github.com/horizon-emu/horizon/result"
)

// RomFSFactory builds read-only archives over the resource filesystem a
// loaded container carries. LoadFile registers one under filesys.IDRomFS
// after a successful container load; the registry owns it from then on.
type RomFSFactory struct {
	loader AppLoader
	log    *zap.Logger
}

var _ filesys.ArchiveFactory = (*RomFSFactory)(nil)

// NewRomFSFactory derives a factory from a successfully-loaded container
// loader.
func NewRomFSFactory(appLoader AppLoader, log *zap.Logger) *RomFSFactory {
	return &RomFSFactory{loader: appLoader, log: log}
}

// GetName identifies the factory in diagnostics.
func (f *RomFSFactory) GetName() string { return "RomFS" }

// Open constructs the read-only resource archive. The guest path
// argument carries no information for this archive type.
func (f *RomFSFactory) Open(path filesys.Path) result.Val[filesys.ArchiveBackend] {
	romfs, status := f.loader.ReadRomFS()
	if status != ResultSuccess {
		f.log.Error("container has no readable RomFS",
			zap.Stringer("status", status))
		return result.Err[filesys.ArchiveBackend](filesys.ErrNotFound)
	}
	return result.Ok[filesys.ArchiveBackend](NewRomFSArchive(romfs, f.log))
}

// RomFSArchive exposes one container's resource filesystem as a guest
// archive. The whole image is presented as a single read-only file; the
// guest's own filesystem driver parses the image contents. Every
// mutating operation fails.
type RomFSArchive struct {
	romfs RomFS
	log   *zap.Logger
}

var _ filesys.ArchiveBackend = (*RomFSArchive)(nil)

// NewRomFSArchive wraps a located RomFS region.
func NewRomFSArchive(romfs RomFS, log *zap.Logger) *RomFSArchive {
	return &RomFSArchive{romfs: romfs, log: log}
}

// GetName identifies the archive in diagnostics.
func (a *RomFSArchive) GetName() string { return "RomFS" }

// OpenFile returns the resource image. Path and mode carry no
// information for this archive type.
func (a *RomFSArchive) OpenFile(path filesys.Path, mode filesys.Mode) result.Val[filesys.FileBackend] {
	return result.Ok[filesys.FileBackend](&romfsFile{romfs: a.romfs, log: a.log})
}

// DeleteFile fails: the archive is read-only.
func (a *RomFSArchive) DeleteFile(path filesys.Path) result.Code {
	a.log.Error("attempted to delete a file from a read-only archive",
		zap.String("path", path.DebugStr()))
	return filesys.ErrUnsupportedOperation
}

// RenameFile fails: the archive is read-only.
func (a *RomFSArchive) RenameFile(src, dst filesys.Path) bool {
	a.log.Error("attempted to rename a file in a read-only archive")
	return false
}

// DeleteDirectory fails: the archive is read-only.
func (a *RomFSArchive) DeleteDirectory(path filesys.Path) bool {
	a.log.Error("attempted to delete a directory from a read-only archive")
	return false
}

// CreateFile fails: the archive is read-only.
func (a *RomFSArchive) CreateFile(path filesys.Path, size uint64) result.Code {
	a.log.Error("attempted to create a file in a read-only archive",
		zap.String("path", path.DebugStr()))
	return filesys.ErrUnsupportedOperation
}

// CreateDirectory fails: the archive is read-only.
func (a *RomFSArchive) CreateDirectory(path filesys.Path) bool {
	a.log.Error("attempted to create a directory in a read-only archive")
	return false
}

// RenameDirectory fails: the archive is read-only.
func (a *RomFSArchive) RenameDirectory(src, dst filesys.Path) bool {
	a.log.Error("attempted to rename a directory in a read-only archive")
	return false
}

// OpenDirectory fails: the image is exposed as a single file.
func (a *RomFSArchive) OpenDirectory(path filesys.Path) (filesys.DirectoryBackend, bool) {
	a.log.Error("attempted to open a directory in a RomFS archive",
		zap.String("path", path.DebugStr()))
	return nil, false
}

// GetFreeBytes reports no writable capacity.
func (a *RomFSArchive) GetFreeBytes() uint64 { return 0 }

// romfsFile reads a window of the container file. It shares the
// container handle with the loader, so the same concurrency contract as
// DiskFile applies.
type romfsFile struct {
	romfs RomFS
	log   *zap.Logger
}

var _ filesys.FileBackend = (*romfsFile)(nil)

func (f *romfsFile) Open() result.Code {
	return result.Success
}

func (f *romfsFile) Read(offset uint64, data []byte) result.Val[int] {
	if offset >= f.romfs.Size {
		return result.Ok(0)
	}
	if max := f.romfs.Size - offset; uint64(len(data)) > max {
		data = data[:max]
	}

	if _, err := f.romfs.File.Seek(int64(f.romfs.Offset+offset), io.SeekStart); err != nil {
		return result.Ok(0)
	}
	read := 0
	for read < len(data) {
		n, err := f.romfs.File.Read(data[read:])
		read += n
		if err != nil {
			break
		}
	}
	return result.Ok(read)
}

func (f *romfsFile) Write(offset uint64, flush bool, data []byte) result.Val[int] {
	f.log.Error("attempted to write to a read-only file")
	return result.Err[int](filesys.ErrUnsupportedOperation)
}

func (f *romfsFile) GetSize() uint64 {
	return f.romfs.Size
}

func (f *romfsFile) SetSize(size uint64) bool {
	f.log.Error("attempted to resize a read-only file")
	return false
}

// Close is a no-op: the container handle belongs to the loader.
func (f *romfsFile) Close() bool {
	return true
}
