// Package dap defines the shared types of the adapter registry:
// adapter descriptors, launch configurations and the lazy program
// path resolver stored inside a launch configuration.
package dap

import (
	"fmt"
)

// AdapterKind says how a debug adapter is started by the launcher.
type AdapterKind string

const (
	// AdapterKindExecutable is an adapter spawned as a child process
	// speaking DAP on stdio, e.g. lldb-vscode.
	AdapterKindExecutable AdapterKind = "executable"
	// AdapterKindServer is an adapter reached over a socket, e.g. a
	// headless dlv instance.
	AdapterKindServer AdapterKind = "server"
)

// RequestKind is the debug session request type.
type RequestKind string

const (
	RequestKindLaunch RequestKind = "launch"
	RequestKindAttach RequestKind = "attach"
)

// AdapterDescriptor describes one debug adapter backend. Descriptors
// are immutable once registered; re-registering a name replaces the
// whole descriptor.
type AdapterDescriptor struct {
	Kind        AdapterKind `json:"kind"`
	Command     string      `json:"command"`
	DisplayName string      `json:"displayName,omitempty"`
}

// ProgramResolver produces the path of the binary to debug. It is
// invoked when a session is launched, never at registration time, so
// it always sees the current environment (working directory, freshly
// built outputs). It must not have side effects.
type ProgramResolver func() (string, error)

// LaunchConfig is a named, language-scoped template for starting a
// debug session. Adapter is the name of a registered
// AdapterDescriptor; the launcher validates the reference when the
// config is used, not when it is registered, since registration order
// between adapters and configs is not guaranteed.
type LaunchConfig struct {
	Name    string      `json:"name"`
	Adapter string      `json:"adapter"`
	Request RequestKind `json:"request"`
	// Program is nil for attach configs.
	Program ProgramResolver `json:"-"`
	// Cwd may contain the ${workspaceRoot} placeholder. The registry
	// stores it verbatim; expansion belongs to the launcher.
	Cwd         string `json:"cwd,omitempty"`
	StopOnEntry bool   `json:"stopOnEntry,omitempty"`
}

// ResolutionError reports a failed lazy program path resolution.
type ResolutionError struct {
	Config string
	Reason string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve program for %q: %s: %v", e.Config, e.Reason, e.Err)
	}
	return fmt.Sprintf("resolve program for %q: %s", e.Config, e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
