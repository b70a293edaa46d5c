//go:build mage

// Package main contains Mage build targets for examdrill developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/ben-spoonradio/examdrill/internal/question"
)

const (
	binDir  = "bin"
	binName = "examdrill"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "(devel)"
	}
	out := filepath.Join(binDir, binName)
	ldflags := fmt.Sprintf("-X github.com/ben-spoonradio/examdrill/cmd.version=%s", version)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, "."); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs Vet and Test in order.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Seed writes the built-in question set to questions.json as a starting
// point for a custom set.
func Seed() error {
	const path = "questions.json"
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}
	if err := question.WriteJSON(path, question.BuiltinSet()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
