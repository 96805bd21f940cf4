package main

import (
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"regtables/internal"
	"regtables/internal/catalog"
)

type specView struct {
	Name    string              `yaml:"name"`
	Path    string              `yaml:"path"`
	Pages   *internal.PageRange `yaml:"page_range,omitempty"`
	Targets []string            `yaml:"targets"`
	Outputs []string            `yaml:"outputs"`
	Exclude []string            `yaml:"exclude,omitempty"`
	Require []string            `yaml:"require,omitempty"`
}

func newSpecsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "specs",
		Short:             "Print the compiled extraction specs and column aliases as YAML",
		Args:              cobra.NoArgs,
		PersistentPreRunE: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := struct {
				Specs   []specView            `yaml:"specs"`
				Aliases []catalog.ColumnAlias `yaml:"aliases"`
			}{Aliases: catalog.ColumnAliases}
			for _, s := range catalog.Specs {
				doc.Specs = append(doc.Specs, specView{
					Name:    s.Name,
					Path:    s.Path,
					Pages:   s.Pages,
					Targets: sortedNames(s.Targets),
					Outputs: s.Outputs,
					Exclude: sortedNames(s.Exclude),
					Require: sortedNames(s.Require),
				})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func sortedNames(s internal.ColumnSet) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
