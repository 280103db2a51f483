package loader

import (
	"encoding/binary"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NCCH/NCSD container layout. Offsets are relative to the start of the
// respective header; sizes and offsets inside the headers are expressed
// in media units.
const (
	ncchMagic = "NCCH"
	ncsdMagic = "NCSD"

	mediaUnit = 0x200 // bytes per media unit

	containerHeaderSize = 0x200
	containerMagicPos   = 0x100 // magic of both NCCH and NCSD headers

	ncsdPartitionTablePos = 0x120 // first entry: u32 offset, u32 size

	ncchFlagsPos       = 0x188 // 8 flag bytes
	ncchNoCryptoFlag   = 0x04  // flags[7]: contents are unencrypted
	ncchRomFSOffsetPos = 0x1B0 // u32, media units, relative to the NCCH
	ncchRomFSSizePos   = 0x1B4 // u32, media units

	// The RomFS region starts with a hash-tree descriptor that guest
	// code never sees; the usable image begins one block in.
	romfsHeaderSkip = 0x1000
)

// IdentifyNCCH probes a blob for the container formats: a full-media
// NCSD image classifies as CCI, a bare executable container as CXI.
func IdentifyNCCH(file afero.File) FileType {
	var magic [4]byte
	if _, err := file.Seek(containerMagicPos, io.SeekStart); err != nil {
		return FileTypeError
	}
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return FileTypeError
	}
	switch string(magic[:]) {
	case ncsdMagic:
		return FileTypeCCI
	case ncchMagic:
		return FileTypeCXI
	default:
		return FileTypeError
	}
}

// AppLoaderNCCH loads executable containers, bare (CXI) or wrapped in a
// full-media image (CCI).
type AppLoaderNCCH struct {
	file     afero.File
	filepath string
	log      *zap.Logger
	loaded   bool

	ncchOffset uint64
	romfs      RomFS
}

var _ AppLoader = (*AppLoaderNCCH)(nil)

// NewAppLoaderNCCH wraps an open container. The loader takes ownership
// of the file handle.
func NewAppLoaderNCCH(file afero.File, filePath string, log *zap.Logger) *AppLoaderNCCH {
	return &AppLoaderNCCH{file: file, filepath: filePath, log: log}
}

func (l *AppLoaderNCCH) readHeader(offset uint64) ([]byte, error) {
	header := make([]byte, containerHeaderSize)
	if _, err := l.file.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(l.file, header); err != nil {
		return nil, err
	}
	return header, nil
}

// Load validates the container and records the embedded RomFS region.
func (l *AppLoaderNCCH) Load() ResultStatus {
	if l.loaded {
		return ResultError
	}

	header, err := l.readHeader(0)
	if err != nil {
		return ResultErrorInvalidFormat
	}

	// A full-media image wraps the executable container in its first
	// partition.
	if string(header[containerMagicPos:containerMagicPos+4]) == ncsdMagic {
		partitionOffset := binary.LittleEndian.Uint32(header[ncsdPartitionTablePos:])
		l.ncchOffset = uint64(partitionOffset) * mediaUnit
		l.log.Debug("full-media image, reading first partition",
			zap.Uint64("ncch_offset", l.ncchOffset))

		header, err = l.readHeader(l.ncchOffset)
		if err != nil {
			return ResultErrorInvalidFormat
		}
	}

	if string(header[containerMagicPos:containerMagicPos+4]) != ncchMagic {
		return ResultErrorInvalidFormat
	}

	if header[ncchFlagsPos+7]&ncchNoCryptoFlag == 0 {
		l.log.Error("encrypted container is not supported",
			zap.String("file", l.filepath))
		return ResultErrorNotImplemented
	}

	romfsOffset := binary.LittleEndian.Uint32(header[ncchRomFSOffsetPos:])
	romfsSize := binary.LittleEndian.Uint32(header[ncchRomFSSizePos:])
	if romfsOffset != 0 && romfsSize != 0 {
		byteSize := uint64(romfsSize) * mediaUnit
		if byteSize <= romfsHeaderSkip {
			return ResultErrorInvalidFormat
		}
		l.romfs = RomFS{
			File:   l.file,
			Offset: l.ncchOffset + uint64(romfsOffset)*mediaUnit + romfsHeaderSkip,
			Size:   byteSize - romfsHeaderSkip,
		}
	}

	l.loaded = true
	return ResultSuccess
}

// ReadRomFS reports the container's embedded resource filesystem.
func (l *AppLoaderNCCH) ReadRomFS() (RomFS, ResultStatus) {
	if !l.loaded {
		return RomFS{}, ResultError
	}
	if l.romfs.Size == 0 {
		l.log.Info("no RomFS present", zap.String("file", l.filepath))
		return RomFS{}, ResultErrorNotImplemented
	}
	return l.romfs, ResultSuccess
}
