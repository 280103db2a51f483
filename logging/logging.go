package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Class names one logging category. Categories form a dot-delimited
// namespace: "Service" is the parent of "Service.FS".
type Class string

const (
	Log              Class = "Log"
	Common           Class = "Common"
	CommonFilesystem Class = "Common.Filesystem"
	Config           Class = "Config"
	Core             Class = "Core"
	Loader           Class = "Loader"
	Service          Class = "Service"
	ServiceFS        Class = "Service.FS"
)

// Classes returns every built-in category.
func Classes() []Class {
	return []Class{
		Log,
		Common,
		CommonFilesystem,
		Config,
		Core,
		Loader,
		Service,
		ServiceFS,
	}
}

// Registry owns one named logger per category, each with its own
// adjustable level. It is constructed explicitly and passed to the
// components that need it; there is no ambient global registry.
type Registry struct {
	mu      sync.RWMutex
	loggers map[Class]*zap.Logger
	levels  map[Class]zap.AtomicLevel
	encoder zapcore.Encoder
	sink    zapcore.WriteSyncer
	nop     bool
}

// NewRegistry creates a registry with colored console loggers for every
// built-in category, all at Info level.
func NewRegistry() *Registry {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	r := &Registry{
		loggers: make(map[Class]*zap.Logger),
		levels:  make(map[Class]zap.AtomicLevel),
		encoder: zapcore.NewConsoleEncoder(encCfg),
		sink:    zapcore.Lock(os.Stdout),
	}
	for _, c := range Classes() {
		r.create(c)
	}
	return r
}

// NewNop creates a registry whose loggers discard everything. Intended
// for tests and for embedding the library without console output.
func NewNop() *Registry {
	r := &Registry{
		loggers: make(map[Class]*zap.Logger),
		levels:  make(map[Class]zap.AtomicLevel),
		nop:     true,
	}
	for _, c := range Classes() {
		r.create(c)
	}
	return r
}

// create must be called with r.mu held, or before the registry escapes
// the constructor.
func (r *Registry) create(c Class) *zap.Logger {
	if r.nop {
		r.levels[c] = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		r.loggers[c] = zap.NewNop()
		return r.loggers[c]
	}
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	lg := zap.New(zapcore.NewCore(r.encoder, r.sink, lvl)).Named(string(c))
	r.levels[c] = lvl
	r.loggers[c] = lg
	return lg
}

// Get returns the logger for a category, creating it on first use for
// categories outside the built-in set.
func (r *Registry) Get(c Class) *zap.Logger {
	r.mu.RLock()
	lg, ok := r.loggers[c]
	r.mu.RUnlock()
	if ok {
		return lg
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if lg, ok := r.loggers[c]; ok {
		return lg
	}
	return r.create(c)
}

// Level reports the current level of a category. Unknown categories
// report InfoLevel.
func (r *Registry) Level(c Class) zapcore.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lvl, ok := r.levels[c]; ok {
		return lvl.Level()
	}
	return zapcore.InfoLevel
}

// SetLevel applies a level to every category matched by name. A name
// matches a category when it equals the category or names one of its
// ancestors in the dot-delimited hierarchy: "Service" matches both
// "Service" and "Service.FS" but never "ServiceX".
func (r *Registry) SetLevel(name string, level zapcore.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c, lvl := range r.levels {
		if matches(c, name) {
			lvl.SetLevel(level)
		}
	}
}

// SetAllLevels applies one level to every category.
func (r *Registry) SetAllLevels(level zapcore.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lvl := range r.levels {
		lvl.SetLevel(level)
	}
}
