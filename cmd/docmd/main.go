package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/docmd/pkg/ui/styles"

	// Import the handlers package so its init() functions register the
	// full node kind set with the dispatcher
	_ "github.com/arthur-debert/docmd/pkg/handlers"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
