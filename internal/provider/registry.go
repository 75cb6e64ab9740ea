package provider

import (
	"sync"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
)

// Registry holds the active booking providers keyed by backend
// identifier. Registration happens at startup; lookups are
// concurrency-safe.
type Registry struct {
	mu        sync.RWMutex
	providers map[models.ProviderBackend]BookingProvider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[models.ProviderBackend]BookingProvider),
	}
}

// Register adds a provider under its backend identifier, replacing
// any previous registration
func (r *Registry) Register(p BookingProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Backend()] = p
}

// Get returns the provider registered for the backend
func (r *Registry) Get(backend models.ProviderBackend) (BookingProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[backend]
	if !ok {
		return nil, apperrors.ErrProviderNotRegistered
	}
	return p, nil
}

// Backends returns the registered backend identifiers
func (r *Registry) Backends() []models.ProviderBackend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	backends := make([]models.ProviderBackend, 0, len(r.providers))
	for b := range r.providers {
		backends = append(backends, b)
	}
	return backends
}

// All returns the registered providers
func (r *Registry) All() []BookingProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	providers := make([]BookingProvider, 0, len(r.providers))
	for _, p := range r.providers {
		providers = append(providers, p)
	}
	return providers
}

// Reset removes all registrations
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = make(map[models.ProviderBackend]BookingProvider)
}
