package dap

import (
	"os"
	"path/filepath"
)

// FixedProgram resolves to the same absolute path on every launch.
// The path still has to exist at launch time.
func FixedProgram(path string) ProgramResolver {
	return func() (string, error) {
		if _, err := os.Stat(path); err != nil {
			return "", &ResolutionError{Reason: "program does not exist", Err: err}
		}
		return path, nil
	}
}

// CwdProgram resolves rel against the working directory of the
// process at the moment of the call. This mirrors how editor debug
// plugins compute the debuggee path fresh on every launch, so the
// same config follows the user between project checkouts.
func CwdProgram(rel string) ProgramResolver {
	return func() (string, error) {
		wd, err := os.Getwd()
		if err != nil {
			return "", &ResolutionError{Reason: "cannot determine working directory", Err: err}
		}
		p := filepath.Join(wd, rel)
		if _, err := os.Stat(p); err != nil {
			return "", &ResolutionError{Reason: "program does not exist", Err: err}
		}
		return p, nil
	}
}
