package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/internal/configfile"
	"github.com/dapreg/dapreg/pkg/log"
)

func initCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a launch config for a language",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				log.Fatalf("load registry failed: %v", err)
				return nil
			}
			if err := promptToCreateConfig(reg.AdapterNames()); err != nil {
				log.Fatalf("create launch config failed: %v", err)
			}
			return nil
		},
	}
	return c
}

func promptToCreateConfig(adapterNames []string) error {
	answers := struct {
		Language    string
		Name        string
		Adapter     string
		Request     string
		Program     string
		Cwd         string
		StopOnEntry bool
	}{}
	questions := []*survey.Question{
		{
			Name: "language",
			Prompt: &survey.Select{
				Message: "Choose a programing language:",
				Options: []string{"rust", "go", "c", "cpp"},
				Default: "rust",
			},
		},
		{
			Name:   "name",
			Prompt: &survey.Input{Message: "What is the config name?"},
			Validate: func(ans interface{}) error {
				if ans.(string) == "" {
					return fmt.Errorf("config name can not be empty")
				}
				return nil
			},
		},
		{
			Name: "adapter",
			Prompt: &survey.Select{
				Message: "Choose a debug adapter:",
				Options: adapterNames,
			},
		},
		{
			Name: "request",
			Prompt: &survey.Select{
				Message: "Choose the request kind:",
				Options: []string{string(dap.RequestKindLaunch), string(dap.RequestKindAttach)},
				Default: string(dap.RequestKindLaunch),
			},
		},
		{
			Name:   "program",
			Prompt: &survey.Input{Message: "Program path (relative paths resolve against the cwd at launch time):"},
		},
		{
			Name: "cwd",
			Prompt: &survey.Input{
				Message: "Working directory:",
				Default: "${workspaceRoot}",
			},
		},
		{
			Name:   "stoponentry",
			Prompt: &survey.Confirm{Message: "Stop on entry?", Default: false},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}
	decl := configfile.LaunchConfigDecl{
		Name:        answers.Name,
		Adapter:     answers.Adapter,
		Request:     dap.RequestKind(answers.Request),
		Program:     answers.Program,
		Cwd:         answers.Cwd,
		StopOnEntry: answers.StopOnEntry,
	}
	decls, err := configfile.LoadLanguageDecls(answers.Language)
	if err != nil {
		return err
	}
	decls = lo.Filter(decls, func(d configfile.LaunchConfigDecl, _ int) bool {
		return d.Name != decl.Name
	})
	decls = append(decls, decl)
	if err := configfile.SaveLanguage(answers.Language, decls); err != nil {
		return err
	}
	log.Infof("saved launch config %s for %s", decl.Name, answers.Language)
	return nil
}
