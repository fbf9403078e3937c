package storage

import (
	"fmt"
	"sync"

	"github.com/kbukum/apistate/logger"
)

// Factory creates a Storage implementation from configuration. Providers
// register themselves via RegisterFactory in their init function.
type Factory func(cfg Config, log *logger.Logger) (Storage, error)

var (
	factoryMu sync.RWMutex
	factories = make(map[string]Factory)
)

// RegisterFactory registers a provider factory under its name. Registering
// the same provider twice replaces the earlier factory.
func RegisterFactory(provider string, factory Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factories[provider] = factory
}

// New creates the Storage selected by cfg.Provider. The provider package
// must have been imported so its factory is registered.
func New(cfg Config, log *logger.Logger) (Storage, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	factoryMu.RLock()
	factory, ok := factories[cfg.Provider]
	factoryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: no factory registered for provider %q (missing import?)", cfg.Provider)
	}
	return factory(cfg, log)
}
