// Package configfile reads declarative adapter and launch config
// definitions from the config root and registers them. Files are
// input only; the registry itself is never written back to disk.
package configfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"muzzammil.xyz/jsonc"
	"sigs.k8s.io/yaml"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/config"
	"github.com/dapreg/dapreg/internal/registry"
	"github.com/dapreg/dapreg/pkg/log"
)

const languageFileSuffix = ".yaml"

// LaunchConfigDecl is the file form of a launch config. Program is a
// path string; relative paths are turned into lazy cwd-joined
// resolvers so the file keeps the deferred resolution behavior.
type LaunchConfigDecl struct {
	Name        string          `json:"name"`
	Adapter     string          `json:"adapter"`
	Request     dap.RequestKind `json:"request,omitempty"`
	Program     string          `json:"program,omitempty"`
	Cwd         string          `json:"cwd,omitempty"`
	StopOnEntry bool            `json:"stopOnEntry,omitempty"`
}

type languageFile struct {
	Configs []LaunchConfigDecl `json:"configs"`
}

type adaptersFile struct {
	Adapters map[string]dap.AdapterDescriptor `json:"adapters"`
}

func adaptersPath() string {
	return path.Join(config.GetConfigRootPath(), "adapters.jsonc")
}

func languagesDir() string {
	return path.Join(config.GetConfigRootPath(), "languages")
}

func (d LaunchConfigDecl) launchConfig() dap.LaunchConfig {
	c := dap.LaunchConfig{
		Name:        d.Name,
		Adapter:     d.Adapter,
		Request:     d.Request,
		Cwd:         d.Cwd,
		StopOnEntry: d.StopOnEntry,
	}
	if c.Request == "" {
		c.Request = dap.RequestKindLaunch
	}
	switch {
	case d.Program == "":
	case filepath.IsAbs(d.Program):
		c.Program = dap.FixedProgram(d.Program)
	default:
		c.Program = dap.CwdProgram(d.Program)
	}
	return c
}

// LoadAll registers everything found under the config root. Missing
// files and a missing root are fine, a fresh install has neither.
func LoadAll(reg *registry.Registry) error {
	if err := loadAdapters(reg); err != nil {
		return err
	}
	return loadLanguages(reg)
}

func loadAdapters(reg *registry.Registry) error {
	bs, err := os.ReadFile(adaptersPath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	af := adaptersFile{}
	// Editors write these files with comments and trailing commas.
	if err := json.Unmarshal(jsonc.ToJSON(bs), &af); err != nil {
		return fmt.Errorf("parse %s: %v", adaptersPath(), err)
	}
	for name, desc := range af.Adapters {
		reg.RegisterAdapter(name, desc)
	}
	return nil
}

func loadLanguages(reg *registry.Registry) error {
	entries, err := os.ReadDir(languagesDir())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), languageFileSuffix) {
			continue
		}
		lang := strings.TrimSuffix(e.Name(), languageFileSuffix)
		f := path.Join(languagesDir(), e.Name())
		bs, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		lf := languageFile{}
		if err := yaml.Unmarshal(bs, &lf); err != nil {
			return fmt.Errorf("parse %s: %v", f, err)
		}
		log.Debugf("loaded %d launch configs for %s from %s", len(lf.Configs), lang, f)
		reg.RegisterLaunchConfigs(lang, lo.Map(lf.Configs, func(d LaunchConfigDecl, _ int) dap.LaunchConfig {
			return d.launchConfig()
		}))
	}
	return nil
}

// LoadLanguageDecls returns the raw declarations of one language
// file, or nil if the file does not exist.
func LoadLanguageDecls(language string) ([]LaunchConfigDecl, error) {
	bs, err := os.ReadFile(path.Join(languagesDir(), language+languageFileSuffix))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lf := languageFile{}
	if err := yaml.Unmarshal(bs, &lf); err != nil {
		return nil, err
	}
	return lf.Configs, nil
}

// SaveLanguage writes a languages/<lang>.yaml file, replacing any
// existing one. Used by the init scaffolding, not by the registry.
func SaveLanguage(language string, decls []LaunchConfigDecl) error {
	bs, err := yaml.Marshal(languageFile{Configs: decls})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(languagesDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(path.Join(languagesDir(), language+languageFileSuffix), bs, 0644)
}
