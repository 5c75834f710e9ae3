package plugin

import (
	"fmt"
	"testing"

	"github.com/dapreg/dapreg/internal/adapters/lldb"
	"github.com/dapreg/dapreg/internal/registry"
)

func TestSetupProbeFailure(t *testing.T) {
	// a host without the debug launch framework: nothing must be
	// registered and nothing must escape as error or panic
	reg := Setup(func() (*registry.Registry, error) {
		return nil, fmt.Errorf("framework not installed")
	}, lldb.NewLLDBAdaptor("", "app"))
	if reg != nil {
		t.Errorf("except nil registry on probe failure, but got %v", reg)
	}
}

func TestSetupRegistersPlugins(t *testing.T) {
	reg := Setup(LocalHost, lldb.NewLLDBAdaptor("", "vulkan-test"))
	if reg == nil {
		t.Fatal("except registry, but got nil")
	}
	d, ok := reg.Adapter(lldb.AdapterName)
	if !ok {
		t.Fatal("except lldb adapter to be registered")
	}
	if d.Command != "/usr/bin/lldb-vscode" {
		t.Errorf("except default lldb command, but got %s", d.Command)
	}
	cs := reg.LaunchConfigs("rust")
	if len(cs) != 1 || cs[0].Name != "vulkan-test" {
		t.Errorf("except single rust config vulkan-test, but got %v", cs)
	}
}

func TestSetupPluginErrorDoesNotAbort(t *testing.T) {
	// a plugin with nothing to register logs and is skipped
	reg := Setup(LocalHost, lldb.NewLLDBAdaptor(""))
	if reg == nil {
		t.Fatal("except registry, but got nil")
	}
	if names := reg.AdapterNames(); len(names) != 0 {
		t.Errorf("except no adapters, but got %v", names)
	}
}
