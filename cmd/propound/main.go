// Command propound generates discovery propounding manifests from
// legal-intake case submissions.
package main

import (
	"os"

	"github.com/propoundhq/propound-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
