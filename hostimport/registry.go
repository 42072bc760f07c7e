package hostimport

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/wasm"
)

// Registry holds the host import catalog. It only grows: an entry, once
// registered, can never change shape.
type Registry struct {
	byKey map[key]Signature
	order map[Version][]string
	mu    sync.RWMutex
}

type key struct {
	name    string
	version Version
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[key]Signature),
		order: make(map[Version][]string),
	}
}

// Default returns a registry holding the published v0 and v1 catalogs.
func Default() *Registry {
	r := NewRegistry()
	for _, sig := range v0Catalog() {
		r.mustRegister(sig)
	}
	for _, sig := range v1Catalog() {
		r.mustRegister(sig)
	}
	return r
}

func (r *Registry) mustRegister(sig Signature) {
	if err := r.Register(sig); err != nil {
		panic(err)
	}
}

// Register adds sig. Registering an identical signature again is a no-op;
// registering a different shape under an existing (version, name) fails.
func (r *Registry) Register(sig Signature) error {
	if sig.Name == "" {
		return errors.InvalidInput(errors.PhaseCatalog, "host import name is empty")
	}
	if sig.Version != V0 && sig.Version != V1 {
		return errors.New(errors.PhaseCatalog, errors.KindUnsupported).
			Path(sig.Name).
			Detail("unknown version %s", sig.Version).
			Build()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{name: sig.Name, version: sig.Version}
	if existing, ok := r.byKey[k]; ok {
		if existing.Same(sig) {
			return nil
		}
		return errors.New(errors.PhaseCatalog, errors.KindDuplicate).
			Path(sig.Module(), sig.Name).
			Detail("already registered as %s", existing).
			Build()
	}

	r.byKey[k] = sig
	r.order[sig.Version] = append(r.order[sig.Version], sig.Name)
	Logger().Debug("registered host import",
		zap.String("module", sig.Module()),
		zap.String("name", sig.Name),
		zap.Stringer("shape", sig.Shape()))
	return nil
}

// Lookup finds an import by WASM module and function name.
func (r *Registry) Lookup(module, name string) (Signature, bool) {
	v, ok := VersionOf(module)
	if !ok {
		return Signature{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sig, ok := r.byKey[key{name: name, version: v}]
	return sig, ok
}

// Version returns the imports of v in registration order.
func (r *Registry) Version(v Version) []Signature {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := r.order[v]
	out := make([]Signature, 0, len(names))
	for _, n := range names {
		out = append(out, r.byKey[key{name: n, version: v}])
	}
	return out
}

// Groups returns the sorted group names used by v.
func (r *Registry) Groups(v Version) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sig := range r.Version(v) {
		if !seen[sig.Group] {
			seen[sig.Group] = true
			out = append(out, sig.Group)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered imports across versions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}

// Stub encodes a module that imports every function of v with its exact
// signature and defines nothing else. Hosts can link against it to prove
// they provide the whole surface.
func (r *Registry) Stub(v Version) []byte {
	var m wasm.Module
	for _, sig := range r.Version(v) {
		m.AddImport(sig.Module(), sig.Name, sig.FuncType())
	}
	return m.Encode()
}

// StubModule encodes the stub module of the published catalog.
func StubModule(v Version) []byte {
	return Default().Stub(v)
}
