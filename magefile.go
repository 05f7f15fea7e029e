//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the swatch binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/swatch", "./cmd/swatch")
}

// Test runs the full test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs gofmt and go vet
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
