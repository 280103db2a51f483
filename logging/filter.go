package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// levelOff is past every real zap level; a category set to it emits
// nothing.
const levelOff = zapcore.FatalLevel + 1

// ParseLevel maps a filter level name to a zap level. Names are
// case-insensitive. Unknown names report ok=false.
func ParseLevel(name string) (zapcore.Level, bool) {
	switch strings.ToLower(name) {
	case "trace", "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "critical":
		return zapcore.DPanicLevel, true
	case "off":
		return levelOff, true
	default:
		return levelOff, false
	}
}

// ParseFilter applies a filter string of space-separated "<name>:<level>"
// entries to the registry. The name "*" addresses every category; any
// other name addresses the category of that name and all of its
// descendants. Entries with an unknown level silence the categories they
// address. Malformed entries (no colon) are skipped.
//
// Example: "*:Warning Service.FS:Debug" quiets everything to warnings
// and then re-enables debug output for the filesystem service.
func (r *Registry) ParseFilter(filter string) {
	for _, entry := range strings.Fields(filter) {
		pos := strings.LastIndex(entry, ":")
		if pos < 0 {
			continue
		}

		name := entry[:pos]
		level, _ := ParseLevel(entry[pos+1:])

		if name == "*" {
			r.SetAllLevels(level)
			continue
		}
		r.SetLevel(name, level)
	}
}

// matches reports whether name addresses class: either exactly, or as a
// prefix of whole namespace segments.
func matches(class Class, name string) bool {
	if string(class) == name {
		return true
	}
	return strings.HasPrefix(string(class), name+".")
}
