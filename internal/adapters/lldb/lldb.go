package lldb

import (
	"fmt"
	"path"

	"github.com/samber/lo"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/internal/adapters"
	"github.com/dapreg/dapreg/internal/registry"
)

const (
	AdapterName    = "lldb"
	defaultCommand = "/usr/bin/lldb-vscode"
)

type lldb struct {
	command string
	// cargo binary names debugged out of target/debug.
	binaries []string
}

func NewLLDBAdaptor(command string, binaries ...string) adapters.AdapterPlugin {
	if command == "" {
		command = defaultCommand
	}
	return &lldb{command: command, binaries: binaries}
}

func (l *lldb) Register(reg *registry.Registry) error {
	if len(l.binaries) == 0 {
		return fmt.Errorf("no cargo binaries configured for lldb")
	}
	reg.RegisterAdapter(AdapterName, dap.AdapterDescriptor{
		Kind:        dap.AdapterKindExecutable,
		Command:     l.command,
		DisplayName: "LLDB",
	})
	reg.RegisterLaunchConfigs("rust", lo.Map(l.binaries, func(bin string, _ int) dap.LaunchConfig {
		return dap.LaunchConfig{
			Name:    bin,
			Adapter: AdapterName,
			Request: dap.RequestKindLaunch,
			// Resolved against the cwd at launch time, so the config
			// keeps working after switching checkouts or rebuilding.
			Program:     dap.CwdProgram(path.Join("target", "debug", bin)),
			Cwd:         "${workspaceRoot}",
			StopOnEntry: false,
		}
	}))
	return nil
}
