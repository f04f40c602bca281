// Command govig enciphers, deciphers and cracks text with Vigenère-family ciphers.
package main

import (
	"os"

	"github.com/idelchi/govig/internal/commands"
	"github.com/idelchi/govig/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown"

func main() {
	var cfg config.Config

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
