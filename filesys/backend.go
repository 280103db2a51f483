package filesys

import "github.com/horizon-emu/horizon/result"

// FileBackend is one open guest file.
type FileBackend interface {
	// Open binds the backend to its host file. The backend is unusable
	// before Open succeeds.
	Open() result.Code

	// Read transfers up to len(data) bytes starting at offset and
	// returns the count transferred. A short count at end-of-file is not
	// an error.
	Read(offset uint64, data []byte) result.Val[int]

	// Write transfers len(data) bytes starting at offset, extending the
	// file when writing past end-of-file, optionally flushing, and
	// returns the count written.
	Write(offset uint64, flush bool, data []byte) result.Val[int]

	// GetSize returns the current file size in bytes.
	GetSize() uint64

	// SetSize resizes the file and reports whether the resize succeeded.
	SetSize(size uint64) bool

	// Close releases the host handle. The backend is unusable afterward.
	Close() bool
}

// DirectoryBackend is one open guest directory enumeration.
type DirectoryBackend interface {
	// Open snapshots the directory. The backend is unusable before Open
	// succeeds.
	Open() bool

	// Read copies up to len(entries) not-yet-consumed records into
	// entries and returns the count copied, 0 once the snapshot is
	// drained.
	Read(entries []Entry) int

	// Close releases the backend.
	Close() bool
}

// ArchiveBackend is one mounted guest archive.
type ArchiveBackend interface {
	// GetName identifies the archive in diagnostics.
	GetName() string

	OpenFile(path Path, mode Mode) result.Val[FileBackend]
	DeleteFile(path Path) result.Code
	RenameFile(src, dst Path) bool
	DeleteDirectory(path Path) bool
	CreateFile(path Path, size uint64) result.Code
	CreateDirectory(path Path) bool
	RenameDirectory(src, dst Path) bool

	// OpenDirectory returns an opened directory backend, or ok=false
	// when the path does not name a directory.
	OpenDirectory(path Path) (DirectoryBackend, bool)

	// GetFreeBytes reports the nominal free capacity of the emulated
	// media.
	GetFreeBytes() uint64
}

// ArchiveFactory constructs archive backends for one archive id. Loaded
// container executables hand factories to the Registry; the guest later
// opens archives through them.
type ArchiveFactory interface {
	// GetName identifies the factory in diagnostics.
	GetName() string

	// Open constructs an archive for the given guest path argument.
	Open(path Path) result.Val[ArchiveBackend]
}
