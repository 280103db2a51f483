// Package logging provides the hierarchical, categorized logging
// facility consumed by the rest of the emulator core.
//
// Categories are dot-delimited names ("Service.FS", "Loader") backed by
// named zap loggers, each with an independently adjustable level. A
// Registry is an explicit context object: construct one, apply a filter
// string, and hand loggers to the components that need them.
//
// Filter strings are space-separated "<name>:<level>" entries, where a
// name addresses a category and its descendants by whole namespace
// segments ("Service" addresses "Service.FS" but not "ServiceX") and
// "*" addresses everything.
package logging
