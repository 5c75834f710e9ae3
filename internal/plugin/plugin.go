// Package plugin bootstraps the adapter registry the way an editor
// plugin would: probe the host for the debug launch framework, then
// register the builtin adapters against the handle the probe returned.
package plugin

import (
	"os"
	"path/filepath"

	"github.com/dapreg/dapreg/internal/adapters"
	"github.com/dapreg/dapreg/internal/adapters/delve"
	"github.com/dapreg/dapreg/internal/adapters/lldb"
	"github.com/dapreg/dapreg/internal/registry"
	"github.com/dapreg/dapreg/pkg/log"
)

// HostProbe checks whether the debug launch framework is available
// and returns a handle to its registry.
type HostProbe func() (*registry.Registry, error)

// LocalHost is the probe for the standalone CLI, where the framework
// is this process itself.
func LocalHost() (*registry.Registry, error) {
	return registry.New(), nil
}

// Setup probes the host and registers the given plugins. A failed
// probe is not a hard failure: the host simply has no debug launch
// framework, so nothing gets registered and callers see a nil
// registry instead of an error.
func Setup(probe HostProbe, plugins ...adapters.AdapterPlugin) *registry.Registry {
	reg, err := probe()
	if err != nil {
		log.Warnf("debug launch framework unavailable, skipping adapter setup: %v", err)
		return nil
	}
	for _, p := range plugins {
		if err := p.Register(reg); err != nil {
			log.Errorf("register adapter plugin failed: %v", err)
		}
	}
	return reg
}

// Defaults returns the builtin plugins, configured for a cargo or go
// project named after the current directory.
func Defaults() []adapters.AdapterPlugin {
	wd, _ := os.Getwd()
	bin := filepath.Base(wd)
	return []adapters.AdapterPlugin{
		lldb.NewLLDBAdaptor("", bin),
		delve.NewDelveAdaptor("", bin),
	}
}
