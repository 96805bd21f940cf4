package main

import (
	"os"

	"github.com/spf13/cobra"

	"regtables/internal/pipeline"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Extract every table and write the CSV files",
		Args:  cobra.NoArgs,
		RunE:  a.runPipeline,
	}
}

func (a *app) runPipeline(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	input, err := pipeline.ResolveInput(a.cfg.InputPath, cwd)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(pipeline.PDFOpener(a.pdfOptions()), cmd.OutOrStdout(), a.log)
	_, err = runner.Run(pipeline.Options{
		InputPath: input,
		OutputDir: a.cfg.OutputDir,
		XLSXPath:  a.cfg.XLSXPath,
	})
	return err
}
