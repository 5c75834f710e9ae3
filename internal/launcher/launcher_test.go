package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/config"
	"github.com/dapreg/dapreg/internal/registry"
)

func newTestRegistry(t *testing.T) (*registry.Registry, string) {
	prog := filepath.Join(t.TempDir(), "vulkan-test")
	if err := os.WriteFile(prog, []byte{}, 0755); err != nil {
		t.Fatal(err)
	}
	reg := registry.New()
	reg.RegisterAdapter("lldb", dap.AdapterDescriptor{
		Kind:        dap.AdapterKindExecutable,
		Command:     "/usr/bin/lldb-vscode",
		DisplayName: "LLDB",
	})
	reg.RegisterLaunchConfigs("rust", []dap.LaunchConfig{
		{
			Name:    "vulkan-test",
			Adapter: "lldb",
			Request: dap.RequestKindLaunch,
			Program: dap.FixedProgram(prog),
			Cwd:     "${workspaceRoot}/examples",
		},
		{
			Name:    "dangling",
			Adapter: "gdb",
			Request: dap.RequestKindLaunch,
			Program: dap.FixedProgram(prog),
		},
		{
			Name:    "broken",
			Adapter: "lldb",
			Request: dap.RequestKindLaunch,
			Program: dap.FixedProgram(prog + "-missing"),
		},
	})
	return reg, prog
}

func TestBuildPlan(t *testing.T) {
	reg, prog := newTestRegistry(t)
	ws := t.TempDir()
	config.SetWorkspaceRoot(ws)
	t.Cleanup(func() { config.SetWorkspaceRoot("") })

	p, err := BuildPlan(reg, "rust", "vulkan-test")
	if err != nil {
		t.Fatalf("except no error, but got %v", err)
	}
	if p.Command != "/usr/bin/lldb-vscode" {
		t.Errorf("except adapter command, but got %s", p.Command)
	}
	if p.Program != prog {
		t.Errorf("except program %s, but got %s", prog, p.Program)
	}
	if p.Cwd != filepath.Join(ws, "examples") {
		t.Errorf("except expanded workspace cwd, but got %s", p.Cwd)
	}
}

func TestBuildPlanErrors(t *testing.T) {
	reg, _ := newTestRegistry(t)
	cases := []struct {
		name      string
		language  string
		config    string
		exceptErr string
	}{
		{
			name:      "unknown language",
			language:  "zig",
			config:    "anything",
			exceptErr: "no launch config",
		},
		{
			name:      "unknown config",
			language:  "rust",
			config:    "nope",
			exceptErr: "no launch config",
		},
		{
			name:      "dangling adapter reference",
			language:  "rust",
			config:    "dangling",
			exceptErr: "unknown adapter",
		},
		{
			name:      "program missing at launch time",
			language:  "rust",
			config:    "broken",
			exceptErr: "does not exist",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildPlan(reg, c.language, c.config)
			if err == nil {
				t.Fatalf("except error %s, but got none", c.exceptErr)
			}
			if !strings.Contains(err.Error(), c.exceptErr) {
				t.Errorf("except error containing %q, but got %v", c.exceptErr, err)
			}
		})
	}
}

func TestBuildPlanAttachSkipsResolution(t *testing.T) {
	reg := registry.New()
	reg.RegisterAdapter("delve", dap.AdapterDescriptor{Kind: dap.AdapterKindServer, Command: "dlv"})
	reg.RegisterLaunchConfigs("go", []dap.LaunchConfig{{
		Name:    "remote attach",
		Adapter: "delve",
		Request: dap.RequestKindAttach,
	}})
	p, err := BuildPlan(reg, "go", "remote attach")
	if err != nil {
		t.Fatalf("except no error, but got %v", err)
	}
	if p.Program != "" {
		t.Errorf("except empty program for attach, but got %s", p.Program)
	}
	if p.Cwd == "" {
		t.Error("except cwd to default to the workspace root")
	}
}
