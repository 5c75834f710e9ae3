// Package registry holds the in-memory adapter and launch
// configuration tables consumed by the debug session launcher.
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/dapreg/dapreg/api/dap"
)

// Registry maps adapter names to descriptors and language names to
// ordered launch configuration lists. Entries are written during
// startup and read for the rest of the process lifetime; there is no
// delete API. Lookups may come from the HTTP service, so reads take a
// shared lock.
type Registry struct {
	rwlock    sync.RWMutex
	adapters  map[string]dap.AdapterDescriptor
	languages map[string][]dap.LaunchConfig
}

func New() *Registry {
	return &Registry{
		adapters:  map[string]dap.AdapterDescriptor{},
		languages: map[string][]dap.LaunchConfig{},
	}
}

// RegisterAdapter stores desc under name. A second registration with
// the same name silently replaces the first, last write wins.
func (r *Registry) RegisterAdapter(name string, desc dap.AdapterDescriptor) {
	r.rwlock.Lock()
	defer r.rwlock.Unlock()
	r.adapters[name] = desc
}

// RegisterLaunchConfigs replaces the config list for language. The
// given order is the display/priority order and is preserved exactly.
func (r *Registry) RegisterLaunchConfigs(language string, configs []dap.LaunchConfig) {
	r.rwlock.Lock()
	defer r.rwlock.Unlock()
	cs := make([]dap.LaunchConfig, len(configs))
	copy(cs, configs)
	r.languages[language] = cs
}

// Adapter is a pure lookup; absence is reported via ok, never as an
// error. The launcher decides what a missing adapter means.
func (r *Registry) Adapter(name string) (dap.AdapterDescriptor, bool) {
	r.rwlock.RLock()
	defer r.rwlock.RUnlock()
	d, ok := r.adapters[name]
	return d, ok
}

// LaunchConfigs returns the registered configs for language in
// registration order, or an empty list for an unknown language.
func (r *Registry) LaunchConfigs(language string) []dap.LaunchConfig {
	r.rwlock.RLock()
	defer r.rwlock.RUnlock()
	cs := make([]dap.LaunchConfig, len(r.languages[language]))
	copy(cs, r.languages[language])
	return cs
}

// LaunchConfig finds a single config of language by name.
func (r *Registry) LaunchConfig(language, name string) (dap.LaunchConfig, bool) {
	r.rwlock.RLock()
	defer r.rwlock.RUnlock()
	return lo.Find(r.languages[language], func(c dap.LaunchConfig) bool {
		return c.Name == name
	})
}

func (r *Registry) AdapterNames() []string {
	r.rwlock.RLock()
	defer r.rwlock.RUnlock()
	names := lo.Keys(r.adapters)
	sort.Strings(names)
	return names
}

func (r *Registry) Languages() []string {
	r.rwlock.RLock()
	defer r.rwlock.RUnlock()
	langs := lo.Keys(r.languages)
	sort.Strings(langs)
	return langs
}

// ResolveProgramPath invokes the config's lazy resolver now. Nothing
// is checked at registration time, so this is the first moment a bad
// program path can surface.
func (r *Registry) ResolveProgramPath(c dap.LaunchConfig) (string, error) {
	if c.Program == nil {
		return "", &dap.ResolutionError{Config: c.Name, Reason: "config has no program resolver"}
	}
	p, err := c.Program()
	if err != nil {
		var re *dap.ResolutionError
		if errors.As(err, &re) && re.Config == "" {
			re.Config = c.Name
		}
		return "", err
	}
	return p, nil
}
