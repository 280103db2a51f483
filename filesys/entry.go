package filesys

import (
	"strings"
	"unicode/utf16"
)

// FilenameLength is the capacity of the fixed-width filename field in a
// directory entry, in UTF-16 code units. The last unit is reserved for
// the NUL terminator.
const FilenameLength = 262

// Entry is one guest-visible directory record. Field order and widths
// are part of the guest ABI and must not change.
type Entry struct {
	// Filename is the UTF-16 encoded name, NUL-terminated and truncated
	// at FilenameLength-1 units.
	Filename [FilenameLength]uint16

	// ShortName is the 8.3 base name: 8 bytes padded with spaces plus a
	// NUL terminator.
	ShortName [9]byte

	// Extension is the 8.3 extension: 3 bytes padded with spaces plus a
	// NUL terminator.
	Extension [4]byte

	IsDirectory bool
	IsHidden    bool
	IsReadOnly  bool

	// IsArchive is true for every non-directory entry regardless of host
	// attributes. The reference hardware never clears the archive bit on
	// its storage media, and guest programs are known to misuse it as a
	// "this is a file" bit, so the emulation must not clear it either.
	IsArchive bool

	FileSize uint64
}

// SetFilename stores name into the fixed-width filename field,
// truncating at capacity and NUL-terminating.
func (e *Entry) SetFilename(name string) {
	units := utf16.Encode([]rune(name))
	if len(units) > FilenameLength-1 {
		units = units[:FilenameLength-1]
	}
	for i := range e.Filename {
		e.Filename[i] = 0
	}
	copy(e.Filename[:], units)
}

// FilenameString decodes the stored filename back to a Go string.
func (e *Entry) FilenameString() string {
	end := 0
	for end < len(e.Filename) && e.Filename[end] != 0 {
		end++
	}
	return string(utf16.Decode(e.Filename[:end]))
}

// forbidden83 lists the characters an 8.3 name may not contain.
const forbidden83 = ".\"/\\[]:;=, "

// SplitFilename83 derives the 8.3 short name and extension from a long
// filename. Both outputs are space-padded and NUL-terminated, as stored
// on a FAT directory record. Names longer than eight acceptable
// characters are shortened with a "~1" marker.
func SplitFilename83(filename string) (shortName [9]byte, extension [4]byte) {
	copy(shortName[:], "        \x00")
	copy(extension[:], "   \x00")

	point := strings.LastIndexByte(filename, '.')
	if point == len(filename)-1 {
		point = strings.LastIndexByte(filename[:point], '.')
	}

	base := filename
	if point >= 0 {
		base = filename[:point]
	}

	j := 0
	for _, letter := range []byte(base) {
		if strings.IndexByte(forbidden83, letter) >= 0 {
			continue
		}
		if j == 8 {
			shortName[6] = '~'
			shortName[7] = '1'
			break
		}
		shortName[j] = upperByte(letter)
		j++
	}

	if point >= 0 {
		ext := filename[point+1:]
		if len(ext) > 3 {
			ext = ext[:3]
		}
		for i := 0; i < len(ext); i++ {
			extension[i] = upperByte(ext[i])
		}
	}
	return shortName, extension
}

func upperByte(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
