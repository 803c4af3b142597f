// Command formnote lists, checks and fills the form schemas declared in a
// notes vault.
package main

import (
	"context"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand(&app{}).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
