package loader

import "github.com/spf13/afero"

// FileType classifies an input blob.
type FileType int

const (
	// FileTypeError marks a probe that could not run (I/O failure).
	FileTypeError FileType = iota - 1

	// FileTypeUnknown marks a blob no recognizer claimed.
	FileTypeUnknown

	// FileTypeCCI is the full-media container format (embeds one or more
	// FileTypeCXI partitions).
	FileTypeCCI

	// FileTypeCXI is the executable container format.
	FileTypeCXI

	// FileTypeCIA is the packaged installer format.
	FileTypeCIA

	// FileTypeELF is the raw executable format.
	FileTypeELF

	// FileTypeTHREEDSX is the homebrew executable container format.
	FileTypeTHREEDSX
)

// String returns the format name as the guest tooling prints it.
func (t FileType) String() string {
	switch t {
	case FileTypeCCI:
		return "NCSD"
	case FileTypeCXI:
		return "NCCH"
	case FileTypeCIA:
		return "CIA"
	case FileTypeELF:
		return "ELF"
	case FileTypeTHREEDSX:
		return "3DSX"
	default:
		return "unknown"
	}
}

// ResultStatus is the outcome of one load request.
type ResultStatus int

const (
	ResultSuccess ResultStatus = iota
	ResultError
	ResultErrorInvalidFormat
	ResultErrorNotImplemented
)

// String names the status for diagnostics.
func (s ResultStatus) String() string {
	switch s {
	case ResultSuccess:
		return "success"
	case ResultErrorInvalidFormat:
		return "invalid format"
	case ResultErrorNotImplemented:
		return "not implemented"
	default:
		return "error"
	}
}

// RomFS locates a container's embedded read-only resource filesystem
// within its host file. File is the container handle owned by the
// loader; consumers window into [Offset, Offset+Size) and never close
// it.
type RomFS struct {
	File   afero.File
	Offset uint64
	Size   uint64
}

// AppLoader is the capability every format-specific loader implements.
// The set of implementations is closed: ELF, 3DSX and NCCH (CXI/CCI).
type AppLoader interface {
	// Load runs the loader. It is called at most once per instance.
	Load() ResultStatus

	// ReadRomFS reports the embedded resource filesystem of a loaded
	// container, or ResultErrorNotImplemented when the format or the
	// particular file has none.
	ReadRomFS() (RomFS, ResultStatus)
}
