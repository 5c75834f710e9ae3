// Package launcher is the registry consumer side: it turns a
// (language, config name) pair into a concrete launch plan. Spawning
// and supervising the adapter process is left to the frontend that
// receives the plan.
package launcher

import (
	"fmt"
	"strings"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/config"
	"github.com/dapreg/dapreg/internal/registry"
)

// Plan is everything a debug session frontend needs to start a
// session: the adapter command, the resolved debuggee path and the
// expanded working directory.
type Plan struct {
	Language    string          `json:"language"`
	Config      string          `json:"config"`
	Adapter     string          `json:"adapter"`
	AdapterKind dap.AdapterKind `json:"adapterKind"`
	Command     string          `json:"command"`
	Request     dap.RequestKind `json:"request"`
	Program     string          `json:"program,omitempty"`
	Cwd         string          `json:"cwd"`
	StopOnEntry bool            `json:"stopOnEntry"`
}

// BuildPlan resolves the named config now. This is the point where a
// dangling adapter reference or a bad program path finally surfaces;
// neither was checked at registration time.
func BuildPlan(reg *registry.Registry, language, name string) (*Plan, error) {
	c, ok := reg.LaunchConfig(language, name)
	if !ok {
		return nil, fmt.Errorf("no launch config %q for language %q", name, language)
	}
	ad, ok := reg.Adapter(c.Adapter)
	if !ok {
		return nil, fmt.Errorf("launch config %q references unknown adapter %q", name, c.Adapter)
	}
	p := &Plan{
		Language:    language,
		Config:      c.Name,
		Adapter:     c.Adapter,
		AdapterKind: ad.Kind,
		Command:     ad.Command,
		Request:     c.Request,
		Cwd:         expandWorkspace(c.Cwd, config.GetWorkspaceRoot()),
		StopOnEntry: c.StopOnEntry,
	}
	if c.Request == dap.RequestKindLaunch {
		program, err := reg.ResolveProgramPath(c)
		if err != nil {
			return nil, err
		}
		p.Program = program
	}
	if p.Cwd == "" {
		p.Cwd = config.GetWorkspaceRoot()
	}
	return p, nil
}

// expandWorkspace fills the workspace placeholder the registry stores
// verbatim. Both spellings are common in editor launch files.
func expandWorkspace(s, root string) string {
	s = strings.ReplaceAll(s, "${workspaceRoot}", root)
	return strings.ReplaceAll(s, "${workspaceFolder}", root)
}
