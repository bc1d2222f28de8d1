package fault

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Descriptor documents a single kind: what it means and whether failures of
// that kind may succeed on retry.
//
// The kind set is open. Packages that own fallible operations register
// descriptors for the kinds their contracts declare, typically from an init
// function.
type Descriptor struct {
	// Kind is the kind being described.
	Kind Kind `json:"kind" yaml:"kind"`

	// Summary is a short human-readable description of the condition.
	Summary string `json:"summary" yaml:"summary"`

	// Retryable indicates whether failures of this kind are temporary and
	// may succeed on retry.
	Retryable bool `json:"retryable" yaml:"retryable"`
}

// Registry holds kind descriptors. It is safe for concurrent use.
//
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[Kind]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[Kind]Descriptor),
	}
}

// Register adds a descriptor to the registry. Registering a kind that is
// already present overwrites the previous descriptor.
//
// Returns an error if the descriptor's kind is empty.
func (r *Registry) Register(d Descriptor) error {
	if d.Kind == "" {
		return errors.New("descriptor kind must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.Kind] = d
	return nil
}

// Lookup returns the descriptor registered for the given kind.
// The second return value reports whether the kind is registered.
func (r *Registry) Lookup(kind Kind) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[kind]
	return d, ok
}

// Kinds returns all registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.descriptors))
	for k := range r.descriptors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Retryable reports whether the error's kind is registered as retryable.
// Returns false if the error is nil, carries no Value, or has an
// unregistered kind (safe default that prevents inappropriate retries).
func (r *Registry) Retryable(err error) bool {
	if err == nil {
		return false
	}

	d, ok := r.Lookup(KindOf(err))
	if !ok {
		return false
	}
	return d.Retryable
}

// catalog is the YAML document shape accepted by ReadCatalog.
type catalog struct {
	Kinds []Descriptor `yaml:"kinds"`
}

// ReadCatalog loads kind descriptors from a YAML catalog and registers each
// one. The expected document shape:
//
//	kinds:
//	  - kind: DIRECTORY_ALREADY_EXISTS
//	    summary: target path is already occupied
//	    retryable: false
//	  - kind: NETWORK_ERROR
//	    summary: a network operation failed
//	    retryable: true
//
// Descriptors are registered in document order, so a later entry for the
// same kind overwrites an earlier one.
func (r *Registry) ReadCatalog(src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	var doc catalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	for i, d := range doc.Kinds {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return nil
}

// defaultRegistry backs the package-level registration functions.
var defaultRegistry = NewRegistry()

// Register adds a descriptor to the default registry.
func Register(d Descriptor) error {
	return defaultRegistry.Register(d)
}

// Lookup returns the descriptor registered for the given kind in the
// default registry.
func Lookup(kind Kind) (Descriptor, bool) {
	return defaultRegistry.Lookup(kind)
}

// Kinds returns all kinds registered in the default registry, sorted.
func Kinds() []Kind {
	return defaultRegistry.Kinds()
}

// ReadCatalog loads a YAML kind catalog into the default registry.
func ReadCatalog(src io.Reader) error {
	return defaultRegistry.ReadCatalog(src)
}

// Retryable reports whether the error's kind is registered as retryable in
// the default registry. This is the primary function for making retry
// decisions.
//
// Example:
//
//	if fault.Retryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
func Retryable(err error) bool {
	return defaultRegistry.Retryable(err)
}
