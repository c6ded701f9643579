package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/commands"
	"github.com/Shivansh-2508/PGT-Portal/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'pgtctl --help' for usage.")
		}
		os.Exit(1)
	}
}
