package surface

import (
	"sync"

	"github.com/pkg/errors"
)

// DefaultWidth is the width of surfaces created without an explicit size,
// the same default an HTML canvas has.
const DefaultWidth = 300

var (
	// ErrUnavailable is returned when a surface cannot be obtained.
	ErrUnavailable = errors.New("surface unavailable")

	// DefaultRegistry is the registry used by package level helpers.
	DefaultRegistry = NewRegistry()
)

// Registry maps caller chosen ids to surfaces, so that a render can target a
// surface the caller keeps a reference to.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		surfaces: make(map[string]Surface),
	}
}

// Register stores s under id, replacing any previous surface with the same id.
func (r *Registry) Register(id string, s Surface) error {
	if id == "" {
		return errors.New("surface id must not be empty")
	}
	if s == nil {
		return errors.Errorf("surface(%s) is nil", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[id] = s

	return nil
}

// Lookup returns the surface registered under id.
func (r *Registry) Lookup(id string) (Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.surfaces[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnavailable, "no surface registered with id(%s)", id)
	}

	return s, nil
}

// GetOrCreate returns the surface registered under id, or a new unregistered
// surface of the given kind when id is empty. A non-empty id which is not
// registered is an error.
func (r *Registry) GetOrCreate(id string, kind Kind) (Surface, error) {
	if id == "" {
		return New(kind, DefaultWidth, DefaultWidth), nil
	}

	return r.Lookup(id)
}

// Remove forgets the surface registered under id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}
