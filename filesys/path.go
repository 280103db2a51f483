package filesys

import "strconv"

// Path is a guest filesystem path. It is kept verbatim: no "..", "." or
// absolute-path normalization is performed here, matching the reference
// hardware contract. DiskArchive decides at resolution time whether to
// confine the path to the mount root (see PathMode).
type Path string

// String returns the textual form with forward slashes, as supplied by
// the guest.
func (p Path) String() string {
	return string(p)
}

// DebugStr returns a quoted form for diagnostics.
func (p Path) DebugStr() string {
	return "[path: " + strconv.Quote(string(p)) + "]"
}
