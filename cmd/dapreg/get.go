package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/pkg/log"
)

func getCmd() *cobra.Command {
	format := ""
	c := &cobra.Command{
		Use:   "get",
		Short: "Get registered adapters and launch configs",
		Example: `
	dapreg get adapters
	dapreg get configs rust
`,
	}
	adaptersCmd := &cobra.Command{
		Use:   "adapters",
		Short: "List registered debug adapters",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				log.Fatalf("load registry failed: %v", err)
				return nil
			}
			adapters := map[string]dap.AdapterDescriptor{}
			for _, name := range reg.AdapterNames() {
				d, _ := reg.Adapter(name)
				adapters[name] = d
			}
			if err := printAdapters(adapters, format); err != nil {
				log.Fatalf("print adapters failed: %v", err)
			}
			return nil
		},
	}
	configsCmd := &cobra.Command{
		Use:   "configs",
		Short: "List launch configs of a language",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				log.Fatalf("please specify the language")
				return nil
			}
			reg, err := loadRegistry()
			if err != nil {
				log.Fatalf("load registry failed: %v", err)
				return nil
			}
			if err := printConfigs(reg.LaunchConfigs(args[0]), format); err != nil {
				log.Fatalf("print configs failed: %v", err)
			}
			return nil
		},
	}
	c.AddCommand(adaptersCmd)
	c.AddCommand(configsCmd)
	c.PersistentFlags().StringVarP(&format, "format", "o", "table", "Output format, table or yaml")

	return c
}

func printAdapters(adapters map[string]dap.AdapterDescriptor, format string) error {
	switch format {
	case "table":
		tableWriter := "%-16s%-12s%-16s%-40s\n"
		fmt.Printf(tableWriter, "NAME", "KIND", "DISPLAY", "COMMAND")
		for _, name := range sortedKeys(adapters) {
			d := adapters[name]
			fmt.Printf(tableWriter, name, d.Kind, d.DisplayName, d.Command)
		}
	case "yaml":
		bs, _ := yaml.Marshal(adapters)
		fmt.Println(string(bs))
	default:
		return fmt.Errorf("format %s not supported", format)
	}
	return nil
}

func printConfigs(configs []dap.LaunchConfig, format string) error {
	switch format {
	case "table":
		tableWriter := "%-24s%-12s%-10s%-24s%-8s\n"
		fmt.Printf(tableWriter, "NAME", "ADAPTER", "REQUEST", "CWD", "STOP")
		for _, c := range configs {
			fmt.Printf(tableWriter, c.Name, c.Adapter, c.Request, c.Cwd, fmt.Sprintf("%v", c.StopOnEntry))
		}
	case "yaml":
		for _, c := range configs {
			bs, _ := yaml.Marshal(c)
			fmt.Println(string(bs))
			fmt.Println("---")
		}
	default:
		return fmt.Errorf("format %s not supported", format)
	}
	return nil
}

func sortedKeys(m map[string]dap.AdapterDescriptor) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
