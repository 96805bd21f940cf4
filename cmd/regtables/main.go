// Command regtables pulls the degree program and contract department tables
// out of the university regulation PDF and writes them as CSV.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"regtables/internal/config"
	"regtables/internal/pdftable"
)

// version is set at build time via ldflags.
var version = "dev"

type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

func main() {
	v, err := config.New()
	must(err)

	root := newRootCmd(&app{v: v})
	must(root.Execute())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "regtables",
		Short: "Extract regulation tables from ewha.pdf into CSV",
		Long: `regtables reads the degree program table and the contract department table
from the regulation PDF and writes degrees.csv and contract_dept.csv
(UTF-8 with BOM). Running without a subcommand is the same as "run".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.runPipeline,
	}

	flags := root.PersistentFlags()
	flags.String("input", "", "regulation PDF (default: ./ewha.pdf, then ../ewha.pdf)")
	flags.String("output-dir", "", "directory for the CSV files (default: working directory)")
	flags.String("xlsx", "", "also write all tables into this workbook")
	flags.String("strategy", "", "table detection strategy: lines|text")
	flags.Float64("snap-tolerance", 0, "ruling alignment tolerance in points")
	flags.BoolP("verbose", "v", false, "debug logging on stderr")

	bind := map[string]string{
		config.KeyInput:         "input",
		config.KeyOutputDir:     "output-dir",
		config.KeyXLSX:          "xlsx",
		config.KeyStrategy:      "strategy",
		config.KeySnapTolerance: "snap-tolerance",
	}
	for key, name := range bind {
		must(a.v.BindPFlag(key, flags.Lookup(name)))
	}

	root.AddCommand(newRunCmd(a), newInspectCmd(a), newSpecsCmd(), newVersionCmd())
	return root
}

// load resolves configuration once flags are parsed.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return nil
}

// noConfig replaces load for commands that never read the configuration,
// so a bad REGTABLES_* value cannot break them.
func noConfig(*cobra.Command, []string) error { return nil }

func (a *app) pdfOptions() pdftable.Options {
	return pdftable.Options{Strategy: a.cfg.Strategy, SnapTolerance: a.cfg.SnapTolerance}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
