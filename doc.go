// Package horizon emulates the on-device storage and executable-loading
// pipeline of a legacy handheld console on top of an ordinary host
// filesystem.
//
// Guest programs see platform-native file and directory semantics:
// fixed-width filenames, 8.3 short names, a permanently-set archive
// attribute, sparse file creation, and the platform's own open-mode and
// error-code vocabulary. Physically, everything is stored as plain files
// and directories on the host.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	horizon/            Root package (this overview)
//	├── result/         Guest result words: tagged codes and value results
//	├── logging/        Category logger registry and filter-string parser
//	├── filesys/        Virtual filesystem: archives, files, directories,
//	│                   directory-entry wire layout, archive registry
//	├── loader/         File-type identification, per-format loaders and
//	│                   the load dispatcher, embedded resource archives
//	├── config/         TOML configuration
//	└── cmd/hzload/     Identify-and-load command line tool
//
// # Quick Start
//
// Mount a host directory as a guest archive and open a file:
//
//	logs := logging.NewRegistry()
//	archive := filesys.NewDiskArchive(afero.NewOsFs(), "sdmc",
//	    filesys.Options{}, logs.Get(logging.ServiceFS))
//
//	res := archive.OpenFile("/save.bin", filesys.ModeRead)
//	if res.IsError() {
//	    // res.Code() carries the guest-visible error word
//	}
//	file := res.Unwrap()
//	defer file.Close()
//
// Load a guest executable and register its resource archive:
//
//	env := loader.Env{
//	    FS:       afero.NewOsFs(),
//	    Archives: filesys.NewRegistry(logs.Get(logging.ServiceFS)),
//	    Log:      logs,
//	}
//	status := loader.LoadFile(env, "game.cci")
//
// On success for container formats, env.Archives exposes a read-only
// resource archive under filesys.IDRomFS.
//
// # Error Model
//
// Fallible guest-facing operations never panic and never return plain
// errors; they return result.Code or result.Val[T] values carrying the
// guest's exact error taxonomy. Host-side setup (configuration, logger
// construction) uses ordinary wrapped errors.
//
// # Thread Safety
//
// A single DiskFile performs a seek followed by a transfer as two host
// calls and is not safe for concurrent use. Distinct files, directories
// and archives are independent. The archive registry is safe for
// concurrent registration and lookup.
package horizon
