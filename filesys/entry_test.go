package filesys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFilename83(t *testing.T) {
	tests := []struct {
		filename  string
		shortName string
		extension string
	}{
		{"file.txt", "FILE    ", "TXT"},
		{"boot.elf", "BOOT    ", "ELF"},
		{"a.b", "A       ", "B  "},
		{"noext", "NOEXT   ", "   "},
		{"longfilename.bin", "LONGFI~1", "BIN"},
		{"exactly8.dat", "EXACTLY8", "DAT"},
		{"archive.tar.gz", "ARCHIV~1", "GZ "},
		{".hidden", "        ", "HID"},
		{"trailing.", "TRAILING", "   "},
		{"sp ace.txt", "SPACE   ", "TXT"},
		{"semi;colon.x", "SEMICO~1", "X  "},
		{"UPPER.EXT", "UPPER   ", "EXT"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			short, ext := SplitFilename83(tt.filename)
			require.Equal(t, tt.shortName, string(short[:8]), "short name")
			require.Equal(t, byte(0), short[8], "short name terminator")
			require.Equal(t, tt.extension, string(ext[:3]), "extension")
			require.Equal(t, byte(0), ext[3], "extension terminator")
		})
	}
}

func TestEntry_SetFilename(t *testing.T) {
	var e Entry
	e.SetFilename("save.bin")
	require.Equal(t, "save.bin", e.FilenameString())
	require.Equal(t, uint16(0), e.Filename[8], "NUL terminator after the name")

	// Reusing the entry must not leak the previous, longer name.
	e.SetFilename("a")
	require.Equal(t, "a", e.FilenameString())
}

func TestEntry_SetFilenameTruncates(t *testing.T) {
	long := strings.Repeat("x", FilenameLength+10)

	var e Entry
	e.SetFilename(long)

	got := e.FilenameString()
	require.Len(t, got, FilenameLength-1)
	require.Equal(t, uint16(0), e.Filename[FilenameLength-1])
}

func TestEntry_SetFilenameNonASCII(t *testing.T) {
	var e Entry
	e.SetFilename("セーブ.dat")
	require.Equal(t, "セーブ.dat", e.FilenameString())
}
