package adapters

import "github.com/dapreg/dapreg/internal/registry"

type AdapterPlugin interface {
	// Register adds the plugin's adapter descriptor and its default
	// language launch configs to reg.
	Register(reg *registry.Registry) error
}
