//go:build mage

// Package main contains Mage build targets for post-engine developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	binDir  = "bin"
	binName = "post-engine"
	cmdPkg  = "./cmd/post-engine"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Lint runs go vet across the module.
func Lint() error {
	cmd := exec.Command("go", "vet", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go vet: %w", err)
	}
	return nil
}

// Clean removes built artifacts.
func Clean() error {
	if err := os.RemoveAll(binDir); err != nil {
		return fmt.Errorf("removing %s: %w", binDir, err)
	}
	return nil
}
