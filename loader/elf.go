package loader

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ELF identification constants for the guest CPU.
const (
	elfClass32    byte   = 1  // 32-bit objects
	elfData2LSB   byte   = 1  // little-endian
	elfMachineARM uint16 = 40 // EM_ARM
)

var elfMagic = []byte{0x7F, 'E', 'L', 'F'}

// IdentifyELF probes a blob for the raw-executable format.
func IdentifyELF(file afero.File) FileType {
	var magic [4]byte
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return FileTypeError
	}
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return FileTypeError
	}
	if bytes.Equal(magic[:], elfMagic) {
		return FileTypeELF
	}
	return FileTypeError
}

// AppLoaderELF loads raw guest executables.
type AppLoaderELF struct {
	file   afero.File
	name   string
	log    *zap.Logger
	loaded bool
}

var _ AppLoader = (*AppLoaderELF)(nil)

// NewAppLoaderELF wraps an open raw executable. The loader takes
// ownership of the file handle.
func NewAppLoaderELF(file afero.File, filename string, log *zap.Logger) *AppLoaderELF {
	return &AppLoaderELF{file: file, name: filename, log: log}
}

// Load validates the executable header for the guest CPU.
func (l *AppLoaderELF) Load() ResultStatus {
	if l.loaded {
		return ResultError
	}

	var header [20]byte
	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return ResultError
	}
	if _, err := io.ReadFull(l.file, header[:]); err != nil {
		return ResultErrorInvalidFormat
	}

	if !bytes.Equal(header[:4], elfMagic) {
		return ResultErrorInvalidFormat
	}
	if header[4] != elfClass32 || header[5] != elfData2LSB {
		l.log.Error("executable is not 32-bit little-endian",
			zap.String("file", l.name))
		return ResultErrorInvalidFormat
	}
	machine := uint16(header[18]) | uint16(header[19])<<8
	if machine != elfMachineARM {
		l.log.Error("executable targets a foreign machine",
			zap.String("file", l.name),
			zap.Uint16("machine", machine))
		return ResultErrorInvalidFormat
	}

	l.loaded = true
	return ResultSuccess
}

// ReadRomFS always fails: raw executables embed no resource filesystem.
func (l *AppLoaderELF) ReadRomFS() (RomFS, ResultStatus) {
	return RomFS{}, ResultErrorNotImplemented
}
