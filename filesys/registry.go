package filesys

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/horizon-emu/horizon/result"
)

// ID keys an archive factory in the registry. The values are the guest's
// own archive identifiers.
type ID uint32

const (
	IDRomFS             ID = 3
	IDSaveData          ID = 4
	IDExtSaveData       ID = 6
	IDSharedExtSaveData ID = 7
	IDSystemSaveData    ID = 8
	IDSDMC              ID = 9
	IDSDMCWriteOnly     ID = 10
)

// Registry is the process-wide collection of archive factories, built
// explicitly and passed to the components that need it. Registration is
// a single atomic insert per id; duplicate ids are rejected and the
// existing factory is kept, so the outcome of racing registrations is
// deterministic.
type Registry struct {
	mu        sync.RWMutex
	factories map[ID]ArchiveFactory
	log       *zap.Logger
}

// NewRegistry creates an empty archive registry.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		factories: make(map[ID]ArchiveFactory),
		log:       log,
	}
}

// Register inserts a factory under id. Registering an already-taken id
// is an error and leaves the existing factory in place.
func (r *Registry) Register(factory ArchiveFactory, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.factories[id]; ok {
		return fmt.Errorf("archive id %d already registered by %s", id, existing.GetName())
	}

	r.log.Debug("registered archive",
		zap.String("name", factory.GetName()),
		zap.Uint32("id", uint32(id)))
	r.factories[id] = factory
	return nil
}

// Lookup returns the factory registered under id.
func (r *Registry) Lookup(id ID) (ArchiveFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[id]
	return factory, ok
}

// Open constructs an archive from the factory registered under id.
func (r *Registry) Open(id ID, path Path) result.Val[ArchiveBackend] {
	factory, ok := r.Lookup(id)
	if !ok {
		r.log.Error("unknown archive id", zap.Uint32("id", uint32(id)))
		return result.Err[ArchiveBackend](ErrNotFound)
	}
	return factory.Open(path)
}

// IDs returns every registered id in ascending order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len reports the number of registered factories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
