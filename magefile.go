//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/privacytests/ptreport"
	binPath    = "bin/ptreport"
)

// Default target - build the binary
var Default = Build

// Build builds the ptreport binary
func Build() error {
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		gitOutput("unknown", "rev-parse", "--short", "HEAD"), date)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/ptreport")
}

// Clean removes build artifacts
func Clean() error {
	return errors.Join(sh.Rm("bin"), sh.Rm("coverage.out"))
}

// Report renders the latest results as a page without opening it
func Report() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "render", "--live")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() error {
	mg.SerialDeps(Lint.Vet, Lint.Golangci)
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint, if installed
func (Lint) Golangci() error {
	err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
	if isCommandNotFound(err) {
		fmt.Fprintln(os.Stderr, "golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return err
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}

func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) || strings.Contains(err.Error(), "executable file not found")
}
