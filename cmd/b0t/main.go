// Package main provides the entry point for b0t.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/settings/cmd/b0t/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
