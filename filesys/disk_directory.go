package filesys

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// fstEntry is one record of the eager host-side directory scan. For
// files, size is the file size in bytes; for directories it is the
// recursive count of entries underneath.
type fstEntry struct {
	name        string
	size        uint64
	isDirectory bool
	children    []fstEntry
}

// scanDirectoryTree scans dir recursively in stable lexical order,
// returning its direct children and the recursive entry count.
func scanDirectoryTree(fsys afero.Fs, dir string) ([]fstEntry, uint64, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]fstEntry, 0, len(infos))
	var count uint64
	for _, info := range infos {
		e := fstEntry{name: info.Name(), isDirectory: info.IsDir()}
		if info.IsDir() {
			children, n, err := scanDirectoryTree(fsys, filepath.Join(dir, info.Name()))
			if err != nil {
				return nil, 0, err
			}
			e.children = children
			e.size = n
			count += n
		} else {
			e.size = uint64(info.Size())
		}
		entries = append(entries, e)
		count++
	}
	return entries, count, nil
}

// DiskDirectory is an immutable snapshot of one host directory subtree,
// taken at Open and exposed through a monotonic cursor over the direct
// children. Host-side mutations after the scan are invisible; open a new
// instance to observe them.
type DiskDirectory struct {
	fs   afero.Fs
	path string
	log  *zap.Logger

	root   fstEntry
	cursor int
}

var _ DirectoryBackend = (*DiskDirectory)(nil)

// NewDiskDirectory binds a directory backend to an already-resolved host
// path. Callers normally go through DiskArchive.OpenDirectory instead.
func NewDiskDirectory(fsys afero.Fs, hostPath string, log *zap.Logger) *DiskDirectory {
	return &DiskDirectory{fs: fsys, path: hostPath, log: log}
}

// Open scans the subtree. It fails when the resolved path is not a host
// directory.
func (d *DiskDirectory) Open() bool {
	info, err := d.fs.Stat(d.path)
	if err != nil || !info.IsDir() {
		return false
	}

	children, count, err := scanDirectoryTree(d.fs, d.path)
	if err != nil {
		return false
	}
	d.root = fstEntry{
		size:        count,
		isDirectory: true,
		children:    children,
	}
	d.cursor = 0
	return true
}

// Read converts up to len(entries) not-yet-consumed records into the
// guest entry layout and returns the count copied. Repeated calls drain
// the snapshot exactly once.
func (d *DiskDirectory) Read(entries []Entry) int {
	read := 0
	for read < len(entries) && d.cursor < len(d.root.children) {
		child := &d.root.children[d.cursor]
		entry := &entries[read]

		d.log.Debug("read entry",
			zap.String("file", child.name),
			zap.Uint64("size", child.size),
			zap.Bool("dir", child.isDirectory))

		*entry = Entry{}
		entry.SetFilename(child.name)
		entry.ShortName, entry.Extension = SplitFilename83(child.name)
		entry.IsDirectory = child.isDirectory
		entry.IsHidden = strings.HasPrefix(child.name, ".")
		entry.IsReadOnly = false
		entry.FileSize = child.size

		// We emulate storage media where the archive bit has never been
		// cleared; guest programs are known to rely on it meaning "not a
		// directory".
		entry.IsArchive = !child.isDirectory

		read++
		d.cursor++
	}
	return read
}

// Close releases the snapshot.
func (d *DiskDirectory) Close() bool {
	return true
}
