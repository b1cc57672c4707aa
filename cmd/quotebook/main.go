// Package main is the entry point for quotebook.
package main

import (
	"fmt"
	"os"

	"github.com/jsamuelsen/quotebook/internal/cli"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the tool.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	err := cli.Execute(cli.BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		if domain.IsInvalidCommand(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
