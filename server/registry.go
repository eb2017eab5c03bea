package server

import (
	"fmt"
	"sync"

	"github.com/curol/httpcore/message"
)

// registryKey is the composite (method, canonical handler-path) key,
// necessary because a path can be reused for different verbs.
type registryKey struct {
	method message.Method
	path   string
}

// RegistryError reports a configuration error from Registry.Add: either a
// duplicate (method, path) key or an attempt to register an unhandlable
// method (TRACE/CONNECT/OPTIONS).
type RegistryError struct {
	DuplicateKey       bool
	UnhandlableMethod  bool
	Method             message.Method
	Path               string
}

func (e *RegistryError) Error() string {
	if e.UnhandlableMethod {
		return fmt.Sprintf("method %s cannot be registered", e.Method)
	}
	return fmt.Sprintf("duplicate registration for (%s, %s)", e.Method, e.Path)
}

// Registry maps (method, canonical-path) to a shared handler. It is
// read-only once the listener starts; adding handlers afterward is
// undefined, per §5.
type Registry struct {
	mu       sync.RWMutex
	handlers map[registryKey]Handler
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[registryKey]Handler)}
}

// Add registers h under (h.Method(), h.Path()). It fails with
// UnhandlableMethod if the method is TRACE/CONNECT/OPTIONS, or
// DuplicateKey if the key is already taken.
func (r *Registry) Add(h Handler) error {
	if h.Method().Unhandlable() {
		return &RegistryError{UnhandlableMethod: true, Method: h.Method()}
	}

	key := registryKey{method: h.Method(), path: h.Path().String()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[key]; exists {
		return &RegistryError{DuplicateKey: true, Method: h.Method(), Path: h.Path().String()}
	}
	r.handlers[key] = h
	return nil
}

// Get looks up the handler for (method, path), returning ok=false if none
// is registered.
func (r *Registry) Get(method message.Method, path message.HandlerPath) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[registryKey{method: method, path: path.String()}]
	return h, ok
}
