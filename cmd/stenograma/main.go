package main

import (
	"os"

	"github.com/balsas-labs/stenograma-cli/internal/adapters/driving/cli"
)

// version is set at build time:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/stenograma
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
