package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dapreg/dapreg/config"
	"github.com/dapreg/dapreg/internal/configfile"
	"github.com/dapreg/dapreg/internal/plugin"
	"github.com/dapreg/dapreg/internal/registry"
	"github.com/dapreg/dapreg/pkg/log"
)

var (
	configRoot    string
	workspaceRoot string
	httpAddr      string
	debug         bool
)

func main() {
	root := &cobra.Command{
		Use: "dapreg",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.SetConfigRootPath(configRoot)
			if workspaceRoot != "" {
				config.SetWorkspaceRoot(workspaceRoot)
			}
			if debug {
				log.SetDebug()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configRoot, "config", "c", "~/.dapreg", "Config root path")
	root.PersistentFlags().BoolVarP(&debug, "debug", "", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&httpAddr, "http-addr", "", ":38090", "HTTP listen address.")
	root.PersistentFlags().StringVarP(&workspaceRoot, "workspace-root", "w", "", "Workspace root used for ${workspaceRoot} expansion, defaults to the current directory.")
	root.AddCommand(getCmd())
	root.AddCommand(planCmd())
	root.AddCommand(serverCmd())
	root.AddCommand(initCmd())
	if err := root.Execute(); err != nil {
		panic(err)
	}
}

// loadRegistry assembles the full registry: builtin adapters first,
// then the declarative files, which may override builtins by name.
func loadRegistry() (*registry.Registry, error) {
	reg := plugin.Setup(plugin.LocalHost, plugin.Defaults()...)
	if reg == nil {
		return nil, fmt.Errorf("debug launch framework unavailable")
	}
	if err := configfile.LoadAll(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
