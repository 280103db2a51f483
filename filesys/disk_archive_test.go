package filesys

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestDiskArchive_DeleteFile(t *testing.T) {
	archive, fs := testArchive(t, Options{})
	require.NoError(t, fs.MkdirAll("/sdmc/dir", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/sdmc/file.bin", []byte("x"), 0o644))

	require.Equal(t, ErrNotFound, archive.DeleteFile("/missing.bin"))
	require.Equal(t, ErrNotAFile, archive.DeleteFile("/dir"))

	require.True(t, archive.DeleteFile("/file.bin").IsSuccess())
	exists, err := afero.Exists(fs, "/sdmc/file.bin")
	require.NoError(t, err)
	require.False(t, exists)

	// Deleting it again: the path no longer exists.
	require.Equal(t, ErrNotFound, archive.DeleteFile("/file.bin"))
}

func TestDiskArchive_CreateFile(t *testing.T) {
	archive, fs := testArchive(t, Options{})
	require.NoError(t, fs.MkdirAll("/sdmc/dir", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/sdmc/taken.bin", []byte("x"), 0o644))

	require.Equal(t, ErrNotAFile, archive.CreateFile("/dir", 0))
	require.Equal(t, ErrAlreadyExists, archive.CreateFile("/taken.bin", 0))

	require.True(t, archive.CreateFile("/empty.bin", 0).IsSuccess())
	res := archive.OpenFile("/empty.bin", ModeRead)
	require.True(t, res.IsSuccess())
	file := res.Unwrap()
	require.Equal(t, uint64(0), file.GetSize())
	file.Close()
}

func TestDiskArchive_CreateFileSparse(t *testing.T) {
	archive, _ := testArchive(t, Options{})

	const size = 1 << 16
	require.True(t, archive.CreateFile("/sparse.bin", size).IsSuccess())

	res := archive.OpenFile("/sparse.bin", ModeRead)
	require.True(t, res.IsSuccess())
	file := res.Unwrap()
	defer file.Close()
	require.Equal(t, uint64(size), file.GetSize())

	// The single trailing byte is the only written data; the rest reads
	// back as zeros.
	buf := make([]byte, 4)
	read := file.Read(size-4, buf)
	require.True(t, read.IsSuccess())
	require.Equal(t, 4, read.Unwrap())
	require.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestDiskArchive_Directories(t *testing.T) {
	archive, fs := testArchive(t, Options{})

	require.True(t, archive.CreateDirectory("/made"))
	require.False(t, archive.CreateDirectory("/made"), "already exists")

	require.True(t, archive.RenameDirectory("/made", "/renamed"))
	isDir, err := afero.IsDir(fs, "/sdmc/renamed")
	require.NoError(t, err)
	require.True(t, isDir)

	require.True(t, archive.DeleteDirectory("/renamed"))
	require.False(t, archive.DeleteDirectory("/renamed"), "already gone")
}

func TestDiskArchive_RenameFile(t *testing.T) {
	archive, fs := testArchive(t, Options{})
	require.NoError(t, afero.WriteFile(fs, "/sdmc/old.bin", []byte("x"), 0o644))

	require.True(t, archive.RenameFile("/old.bin", "/new.bin"))
	require.False(t, archive.RenameFile("/old.bin", "/other.bin"), "source is gone")

	exists, err := afero.Exists(fs, "/sdmc/new.bin")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestDiskArchive_OpenDirectory(t *testing.T) {
	archive, fs := testArchive(t, Options{})
	require.NoError(t, fs.MkdirAll("/sdmc/dir", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/sdmc/dir/a.bin", []byte("x"), 0o644))

	dir, ok := archive.OpenDirectory("/dir")
	require.True(t, ok)
	entries := make([]Entry, 4)
	require.Equal(t, 1, dir.Read(entries))
	require.Equal(t, "a.bin", entries[0].FilenameString())

	_, ok = archive.OpenDirectory("/missing")
	require.False(t, ok)
}

func TestDiskArchive_GetFreeBytes(t *testing.T) {
	archive, _ := testArchive(t, Options{})
	require.Equal(t, uint64(1<<30), archive.GetFreeBytes())
}

func TestDiskArchive_HardenedPathMode(t *testing.T) {
	archive, fs := testArchive(t, Options{PathMode: PathModeHardened})
	require.NoError(t, afero.WriteFile(fs, "/escaped.bin", []byte("secret"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/sdmc/inside.bin", []byte("ok"), 0o644))

	res := archive.OpenFile("/../escaped.bin", ModeRead)
	require.True(t, res.IsError())
	require.Equal(t, ErrNotFound, res.Code(), "escape attempts resolve to NotFound")

	require.Equal(t, ErrNotFound, archive.DeleteFile("/../escaped.bin"))
	require.False(t, archive.CreateDirectory("/../outside"))

	// Paths inside the root still work, ".." and all.
	res = archive.OpenFile("/sub/../inside.bin", ModeRead)
	require.True(t, res.IsSuccess())
	res.Unwrap().Close()
}

func TestDiskArchive_GetName(t *testing.T) {
	archive, _ := testArchive(t, Options{})
	require.Equal(t, "DiskArchive: /sdmc", archive.GetName())
}
