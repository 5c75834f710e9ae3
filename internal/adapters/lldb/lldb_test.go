package lldb

import (
	"testing"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/internal/registry"
)

func TestRegister(t *testing.T) {
	reg := registry.New()
	p := NewLLDBAdaptor("", "vulkan-test", "mandelbrot")
	if err := p.Register(reg); err != nil {
		t.Fatalf("except no error, but got %v", err)
	}
	d, ok := reg.Adapter(AdapterName)
	if !ok {
		t.Fatal("except lldb adapter to be registered")
	}
	if d.Kind != dap.AdapterKindExecutable || d.Command != "/usr/bin/lldb-vscode" {
		t.Errorf("except executable /usr/bin/lldb-vscode, but got %s %s", d.Kind, d.Command)
	}
	cs := reg.LaunchConfigs("rust")
	if len(cs) != 2 {
		t.Fatalf("except 2 rust configs, but got %d", len(cs))
	}
	if cs[0].Name != "vulkan-test" || cs[1].Name != "mandelbrot" {
		t.Errorf("except binary order preserved, but got %s, %s", cs[0].Name, cs[1].Name)
	}
	for _, c := range cs {
		if c.Adapter != AdapterName {
			t.Errorf("except adapter ref %s, but got %s", AdapterName, c.Adapter)
		}
		if c.Program == nil {
			t.Errorf("except lazy program resolver on %s", c.Name)
		}
		if c.Cwd != "${workspaceRoot}" {
			t.Errorf("except placeholder cwd kept verbatim, but got %s", c.Cwd)
		}
	}
}

func TestRegisterCustomCommand(t *testing.T) {
	reg := registry.New()
	if err := NewLLDBAdaptor("/opt/llvm/bin/lldb-dap", "app").Register(reg); err != nil {
		t.Fatalf("except no error, but got %v", err)
	}
	d, _ := reg.Adapter(AdapterName)
	if d.Command != "/opt/llvm/bin/lldb-dap" {
		t.Errorf("except custom command, but got %s", d.Command)
	}
}

func TestRegisterWithoutBinaries(t *testing.T) {
	if err := NewLLDBAdaptor("").Register(registry.New()); err == nil {
		t.Error("except error without binaries, but got none")
	}
}
