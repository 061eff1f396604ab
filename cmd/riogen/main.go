// @MX:ANCHOR: [AUTO] main is the entry point of the riogen CLI and exits with status 1 on error.
// @MX:REASON: the only entry point of the binary; delegates to the command tree
package main

import (
	"os"

	"github.com/rio-labs/riogen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
