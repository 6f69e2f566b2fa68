package ai

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Opener builds a provider from config. Unset fields take the provider's
// defaults.
type Opener func(config *ProviderConfig) (Provider, error)

// Registry maps provider types to openers. It remembers what it opened so
// one Close releases every connection at exit.
type Registry struct {
	mu      sync.Mutex
	openers map[string]Opener
	opened  []Provider
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{openers: make(map[string]Opener)}
}

// Providers is the process registry the CLI fills with the built-in backends
var Providers = NewRegistry()

// Register adds open under name. Names are case-insensitive.
func (r *Registry) Register(name string, open Opener) error {
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.openers[key]; exists {
		return NewProviderError(ErrTypeRegistration, "provider already registered", key)
	}
	r.openers[key] = open
	return nil
}

// Names lists the registered provider types in sorted order
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.openers))
	for name := range r.openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the provider named by config.Type
func (r *Registry) Open(config *ProviderConfig) (Provider, error) {
	if config == nil {
		return nil, NewConfigurationError("", "config", "configuration is required")
	}
	key := strings.ToLower(config.Type)

	r.mu.Lock()
	open, ok := r.openers[key]
	r.mu.Unlock()
	if !ok {
		return nil, NewProviderError(ErrTypeNotFound,
			fmt.Sprintf("provider not registered (available: %s)", strings.Join(r.Names(), ", ")), key)
	}

	provider, err := open(config)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.opened = append(r.opened, provider)
	r.mu.Unlock()
	return provider, nil
}

// Close closes every provider opened so far. Registrations are kept.
func (r *Registry) Close() error {
	r.mu.Lock()
	opened := r.opened
	r.opened = nil
	r.mu.Unlock()

	var errs []error
	for _, p := range opened {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
