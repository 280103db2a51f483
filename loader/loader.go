package loader

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/horizon-emu/horizon/filesys"
	"github.com/horizon-emu/horizon/logging"
)

// Env carries the explicitly-constructed process context a load request
// needs: the host filesystem, the archive registry that receives
// resource-archive factories, and the logging registry.
type Env struct {
	FS       afero.Fs
	Archives *filesys.Registry
	Log      *logging.Registry
}

// IdentifyFile probes an open blob against the known format recognizers
// in fixed priority order: 3DSX, then ELF, then NCCH/NCSD. The first
// non-error classification wins; Unknown means no recognizer claimed it.
func IdentifyFile(file afero.File) FileType {
	probes := []func(afero.File) FileType{
		IdentifyTHREEDSX,
		IdentifyELF,
		IdentifyNCCH,
	}
	for _, probe := range probes {
		if t := probe(file); t != FileTypeError {
			return t
		}
	}
	return FileTypeUnknown
}

// IdentifyPath opens filename from fsys and identifies it by content.
func IdentifyPath(env Env, filename string) FileType {
	file, err := env.FS.Open(filename)
	if err != nil {
		env.Log.Get(logging.Loader).Error("failed to load file",
			zap.String("file", filename), zap.Error(err))
		return FileTypeUnknown
	}
	defer file.Close()
	return IdentifyFile(file)
}

// GuessFromExtension maps a filename extension (with or without the
// leading dot, case-insensitive) to a file type.
func GuessFromExtension(extension string) FileType {
	ext := strings.ToLower(extension)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	switch ext {
	case ".elf", ".axf":
		return FileTypeELF
	case ".cci", ".3ds":
		return FileTypeCCI
	case ".cxi":
		return FileTypeCXI
	case ".3dsx":
		return FileTypeTHREEDSX
	case ".cia":
		return FileTypeCIA
	default:
		return FileTypeUnknown
	}
}

// GetLoader constructs the loader matching an identified type, handing
// it the open file and the derived name(s). Unsupported types return
// nil.
func GetLoader(env Env, file afero.File, fileType FileType, filename, filePath string) AppLoader {
	switch fileType {
	case FileTypeTHREEDSX:
		return NewAppLoaderTHREEDSX(file, filename, env.Log.Get(logging.Loader))
	case FileTypeELF:
		return NewAppLoaderELF(file, filename, env.Log.Get(logging.Loader))
	case FileTypeCXI, FileTypeCCI:
		return NewAppLoaderNCCH(file, filePath, env.Log.Get(logging.Loader))
	default:
		return nil
	}
}

// LoadFile identifies and loads one guest executable. On success for
// container formats, the container's embedded resource filesystem is
// registered into env.Archives under filesys.IDRomFS.
func LoadFile(env Env, filename string) ResultStatus {
	log := env.Log.Get(logging.Loader)

	file, err := env.FS.Open(filename)
	if err != nil {
		log.Error("failed to load file",
			zap.String("file", filename), zap.Error(err))
		return ResultError
	}

	base := filepath.Base(filename)
	extension := filepath.Ext(base)

	fileType := IdentifyFile(file)
	filenameType := GuessFromExtension(extension)

	if fileType != filenameType {
		log.Warn("file has a different type than its extension",
			zap.String("file", filename),
			zap.Stringer("content_type", fileType),
			zap.Stringer("extension_type", filenameType))
		if fileType == FileTypeUnknown {
			fileType = filenameType
		}
	}

	log.Info("loading file",
		zap.String("file", filename),
		zap.Stringer("type", fileType))

	switch fileType {
	case FileTypeTHREEDSX, FileTypeCXI, FileTypeCCI:
		// Container formats: load, then register the embedded resource
		// filesystem. Only a registered factory retains the file handle;
		// every other outcome closes it.
		appLoader := GetLoader(env, file, fileType, base, filename)
		status := appLoader.Load()
		if status != ResultSuccess {
			file.Close()
			return status
		}
		factory := NewRomFSFactory(appLoader, env.Log.Get(logging.ServiceFS))
		if err := env.Archives.Register(factory, filesys.IDRomFS); err != nil {
			log.Warn("resource archive not registered", zap.Error(err))
			file.Close()
		}
		return status

	case FileTypeELF:
		status := GetLoader(env, file, fileType, base, filename).Load()
		file.Close()
		return status

	case FileTypeCIA:
		file.Close()
		return ResultErrorNotImplemented

	default:
		file.Close()
		log.DPanic("file is of unknown type", zap.String("file", filename))
		return ResultErrorInvalidFormat
	}
}
