package filesys

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/horizon-emu/horizon/result"
)

// DiskFile is one open guest file bound to a resolved host path and an
// open mode, both fixed at construction.
//
// Read and Write issue a host seek followed by a host transfer; the two
// calls are not atomic, so a single DiskFile must not be used from
// multiple goroutines.
type DiskFile struct {
	fs     afero.Fs
	path   string
	mode   Mode
	strict bool
	log    *zap.Logger
	file   afero.File
}

var _ FileBackend = (*DiskFile)(nil)

// NewDiskFile binds a file backend to an already-resolved host path.
// Callers normally go through DiskArchive.OpenFile instead.
func NewDiskFile(fsys afero.Fs, hostPath string, mode Mode, strictResize bool, log *zap.Logger) *DiskFile {
	return &DiskFile{
		fs:     fsys,
		path:   hostPath,
		mode:   mode,
		strict: strictResize,
		log:    log,
	}
}

// Open opens (and with ModeCreate, first creates) the host file.
func (f *DiskFile) Open() result.Code {
	if info, err := f.fs.Stat(f.path); err == nil && info.IsDir() {
		return ErrNotAFile
	}

	// Specifying only the create flag is invalid.
	if f.mode.HasCreate() && !f.mode.HasRead() && !f.mode.HasWrite() {
		return ErrInvalidOpenFlags
	}

	if exists, _ := afero.Exists(f.fs, f.path); !exists {
		if !f.mode.HasCreate() {
			f.log.Error("non-existing file can't be open without mode create",
				zap.String("path", f.path))
			return ErrNotFound
		}
		created, err := f.fs.Create(f.path)
		if err != nil {
			return ErrNotFound
		}
		created.Close()
	}

	// Write access implies read access on the host handle. Go opens in
	// binary mode unconditionally, so no newline translation applies.
	flag := os.O_RDONLY
	if f.mode.HasWrite() {
		flag = os.O_RDWR
	}

	file, err := f.fs.OpenFile(f.path, flag, 0o644)
	if err != nil {
		return ErrNotFound
	}
	f.file = file
	return result.Success
}

// Read transfers up to len(data) bytes starting at offset. A short count
// at end-of-file is reported as success.
func (f *DiskFile) Read(offset uint64, data []byte) result.Val[int] {
	if !f.mode.HasRead() && !f.mode.HasWrite() {
		return result.Err[int](ErrInvalidOpenFlags)
	}

	if _, err := f.file.Seek(int64(offset), io.SeekStart); err != nil {
		return result.Ok(0)
	}

	read := 0
	for read < len(data) {
		n, err := f.file.Read(data[read:])
		read += n
		if err != nil {
			break
		}
	}
	return result.Ok(read)
}

// Write transfers len(data) bytes starting at offset. Writing past the
// current end-of-file extends the file.
func (f *DiskFile) Write(offset uint64, flush bool, data []byte) result.Val[int] {
	if !f.mode.HasWrite() {
		return result.Err[int](ErrInvalidOpenFlags)
	}

	if _, err := f.file.Seek(int64(offset), io.SeekStart); err != nil {
		return result.Ok(0)
	}

	written, _ := f.file.Write(data)
	if flush {
		f.file.Sync()
	}
	return result.Ok(written)
}

// GetSize returns the current host file size, 0 when it cannot be
// determined.
func (f *DiskFile) GetSize() uint64 {
	info, err := f.file.Stat()
	if err != nil {
		return 0
	}
	return uint64(info.Size())
}

// SetSize resizes and flushes the file. The reference behavior reports
// success regardless of the resize outcome; strict mode (Options
// .StrictResize) reports the real outcome instead.
func (f *DiskFile) SetSize(size uint64) bool {
	err := f.file.Truncate(int64(size))
	f.file.Sync()
	if f.strict {
		return err == nil
	}
	return true
}

// Close releases the host handle.
func (f *DiskFile) Close() bool {
	if f.file == nil {
		return false
	}
	err := f.file.Close()
	f.file = nil
	return err == nil
}
