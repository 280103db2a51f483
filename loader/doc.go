// Package loader implements the executable-loading pipeline: sniff an
// input blob's format, select the matching loader, run it, and register
// any embedded resource filesystem into the archive registry.
//
// Identification is first-match-wins over a fixed probe order (3DSX,
// ELF, NCCH/NCSD), independently cross-checked against the filename
// extension: a disagreement is logged, and an unknown content type
// defers to the extension guess.
//
// Loaders form a closed variant set behind the AppLoader interface.
// Container formats (3DSX, CXI, CCI) locate their embedded RomFS during
// Load; on success, LoadFile registers a RomFSFactory for it under
// filesys.IDRomFS so subsequently-loaded guest code can mount it.
package loader
