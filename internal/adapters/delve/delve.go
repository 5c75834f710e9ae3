package delve

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/internal/adapters"
	"github.com/dapreg/dapreg/internal/registry"
)

const (
	AdapterName    = "delve"
	defaultCommand = "dlv"
)

type delve struct {
	command string
	// build outputs relative to the project root.
	binaries []string
}

func NewDelveAdaptor(command string, binaries ...string) adapters.AdapterPlugin {
	if command == "" {
		command = defaultCommand
	}
	return &delve{command: command, binaries: binaries}
}

func (d *delve) Register(reg *registry.Registry) error {
	if len(d.binaries) == 0 {
		return fmt.Errorf("no build outputs configured for delve")
	}
	reg.RegisterAdapter(AdapterName, dap.AdapterDescriptor{
		Kind:        dap.AdapterKindServer,
		Command:     d.command,
		DisplayName: "Delve",
	})
	configs := lo.Map(d.binaries, func(bin string, _ int) dap.LaunchConfig {
		return dap.LaunchConfig{
			Name:        bin,
			Adapter:     AdapterName,
			Request:     dap.RequestKindLaunch,
			Program:     dap.CwdProgram(bin),
			Cwd:         "${workspaceRoot}",
			StopOnEntry: false,
		}
	})
	// Attach configs carry no program resolver, the debuggee is
	// already running.
	configs = append(configs, dap.LaunchConfig{
		Name:    "remote attach",
		Adapter: AdapterName,
		Request: dap.RequestKindAttach,
		Cwd:     "${workspaceRoot}",
	})
	reg.RegisterLaunchConfigs("go", configs)
	return nil
}
