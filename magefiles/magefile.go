//go:build mage

// Package main provides build targets for the librarian project using Mage.
//
// Usage:
//
//	mage build       Compile the librarian binary to bin/
//	mage run         Build, then open the interactive menu
//	mage test:all    Run all tests
//	mage test:race   Run all tests with the race detector
//	mage test:cover  Run all tests and write coverage.out
//	mage lint        Run go vet, then golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install librarian to GOPATH/bin
package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Run builds the binary and starts an interactive session.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}
