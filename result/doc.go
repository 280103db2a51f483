// Package result implements the guest's tagged result model.
//
// Every fallible guest-facing operation returns a Code (no payload) or a
// Val[T] (payload on success) instead of raising errors. A Code is a
// four-field tag (module, summary, level, description) whose packed
// 32-bit form, Raw, is part of the guest ABI; emulated code compares
// these words bit-for-bit.
package result
