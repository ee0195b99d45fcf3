// emailsize checks HTML emails and images against inbox size limits.
package main

import (
	"os"

	"email_size_analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
