package config

import (
	"os"
	"path/filepath"
	"strings"
)

var configRootPath = "~/.dapreg"

func absPath(path string) string {
	if strings.HasPrefix(path, "~") {
		h, _ := os.UserHomeDir()
		return filepath.Join(h, path[2:])
	}
	return path
}

func GetConfigRootPath() string {
	return absPath(configRootPath)
}

func SetConfigRootPath(path string) {
	configRootPath = path
}

// workspaceRoot is what the ${workspaceRoot} placeholder in a launch
// config's working directory expands to. Defaults to the process cwd.
var workspaceRoot = ""

func GetWorkspaceRoot() string {
	if workspaceRoot == "" {
		wd, _ := os.Getwd()
		return wd
	}
	return absPath(workspaceRoot)
}

func SetWorkspaceRoot(path string) {
	workspaceRoot = path
}
