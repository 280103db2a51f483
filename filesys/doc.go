// Package filesys implements the guest-facing virtual filesystem: the
// archive/file/directory backend trio, the guest descriptor types (Path,
// Mode, Entry), the filesystem error vocabulary and the archive-factory
// registry.
//
// DiskArchive mounts a host directory and hands out DiskFile and
// DiskDirectory backends for it. The guest-visible contract is exact:
// directory entries carry fixed-width UTF-16 filenames, derived 8.3
// short names, and an archive bit that is always set for files (the
// reference hardware never clears it). Error codes reproduce the guest's
// numeric taxonomy; see the Err* values and package result.
//
// All host I/O goes through an injected afero.Fs, so tests run against
// an in-memory filesystem and production against the real one. All
// operations are synchronous and blocking with no cancellation; callers
// needing bounded latency must impose it externally.
package filesys
