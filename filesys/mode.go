package filesys

import "fmt"

// Mode is the guest's open-mode flag word.
type Mode uint32

const (
	ModeRead   Mode = 1 << iota // open for reading
	ModeWrite                   // open for writing
	ModeCreate                  // create the file if it does not exist
)

// HasRead reports whether the read flag is set.
func (m Mode) HasRead() bool { return m&ModeRead != 0 }

// HasWrite reports whether the write flag is set.
func (m Mode) HasWrite() bool { return m&ModeWrite != 0 }

// HasCreate reports whether the create flag is set.
func (m Mode) HasCreate() bool { return m&ModeCreate != 0 }

// Hex renders the flag word the way the guest's own tooling prints it.
func (m Mode) Hex() string {
	return fmt.Sprintf("%01X", uint32(m))
}
