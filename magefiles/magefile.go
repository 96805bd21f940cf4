//go:build mage

// Package main contains Mage build targets for regtables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "regtables"
	cmdPkg  = "./cmd/regtables"
)

var outputs = []string{"degrees.csv", "contract_dept.csv"}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs all package tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Run builds the binary and extracts the tables from ./ewha.pdf.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "run")
}

// Clean removes the binary and the CSV files of the last run.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	for _, f := range outputs {
		if err := sh.Rm(f); err != nil {
			return err
		}
	}
	return nil
}
