package loader

import (
	"encoding/binary"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// 3DSX header layout. The base header is 32 bytes; the extended form
// appends SMDH and RomFS locations.
const (
	threedsxMagic          = "3DSX"
	threedsxBaseHeaderSize = 32
	threedsxExtHeaderSize  = 44
	threedsxRomFSOffsetPos = 0x28 // u32 file offset of the RomFS image
)

// IdentifyTHREEDSX probes a blob for the homebrew container format.
func IdentifyTHREEDSX(file afero.File) FileType {
	var magic [4]byte
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return FileTypeError
	}
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return FileTypeError
	}
	if string(magic[:]) == threedsxMagic {
		return FileTypeTHREEDSX
	}
	return FileTypeError
}

// AppLoaderTHREEDSX loads homebrew executable containers.
type AppLoaderTHREEDSX struct {
	file   afero.File
	name   string
	log    *zap.Logger
	loaded bool
	romfs  RomFS
}

var _ AppLoader = (*AppLoaderTHREEDSX)(nil)

// NewAppLoaderTHREEDSX wraps an open homebrew container. The loader
// takes ownership of the file handle.
func NewAppLoaderTHREEDSX(file afero.File, filename string, log *zap.Logger) *AppLoaderTHREEDSX {
	return &AppLoaderTHREEDSX{file: file, name: filename, log: log}
}

// Load validates the container header and records the embedded RomFS
// location when the extended header carries one.
func (l *AppLoaderTHREEDSX) Load() ResultStatus {
	if l.loaded {
		return ResultError
	}

	var header [threedsxExtHeaderSize]byte
	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return ResultError
	}
	n, err := io.ReadFull(l.file, header[:])
	if err != nil && n < threedsxBaseHeaderSize {
		return ResultErrorInvalidFormat
	}

	if string(header[:4]) != threedsxMagic {
		return ResultErrorInvalidFormat
	}

	headerSize := binary.LittleEndian.Uint16(header[4:6])
	if headerSize != threedsxBaseHeaderSize && headerSize != threedsxExtHeaderSize {
		l.log.Error("unexpected 3DSX header size",
			zap.String("file", l.name),
			zap.Uint16("header_size", headerSize))
		return ResultErrorInvalidFormat
	}

	if headerSize == threedsxExtHeaderSize && n >= threedsxExtHeaderSize {
		romfsOffset := binary.LittleEndian.Uint32(header[threedsxRomFSOffsetPos : threedsxRomFSOffsetPos+4])
		if romfsOffset != 0 {
			info, err := l.file.Stat()
			if err != nil || uint64(romfsOffset) >= uint64(info.Size()) {
				return ResultErrorInvalidFormat
			}
			l.romfs = RomFS{
				File:   l.file,
				Offset: uint64(romfsOffset),
				Size:   uint64(info.Size()) - uint64(romfsOffset),
			}
		}
	}

	l.loaded = true
	return ResultSuccess
}

// ReadRomFS reports the appended RomFS image, if the container has one.
func (l *AppLoaderTHREEDSX) ReadRomFS() (RomFS, ResultStatus) {
	if !l.loaded {
		return RomFS{}, ResultError
	}
	if l.romfs.Size == 0 {
		l.log.Info("no RomFS present", zap.String("file", l.name))
		return RomFS{}, ResultErrorNotImplemented
	}
	return l.romfs, ResultSuccess
}
