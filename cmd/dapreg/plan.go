package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/dapreg/dapreg/internal/launcher"
	"github.com/dapreg/dapreg/pkg/log"
)

func planCmd() *cobra.Command {
	format := ""
	c := &cobra.Command{
		Use:   "plan",
		Short: "Compute the launch plan for a config",
		Example: `
	dapreg plan rust vulkan-test
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				log.Fatalf("please specify the language and config name")
				return nil
			}
			reg, err := loadRegistry()
			if err != nil {
				log.Fatalf("load registry failed: %v", err)
				return nil
			}
			p, err := launcher.BuildPlan(reg, args[0], args[1])
			if err != nil {
				log.Fatalf("build launch plan failed: %v", err)
				return nil
			}
			switch format {
			case "yaml":
				bs, _ := yaml.Marshal(p)
				fmt.Println(string(bs))
			case "json":
				bs, _ := json.MarshalIndent(p, "", "  ")
				fmt.Println(string(bs))
			default:
				log.Fatalf("format %s not supported", format)
			}
			return nil
		},
	}
	c.PersistentFlags().StringVarP(&format, "format", "o", "yaml", "Output format, yaml or json")

	return c
}
