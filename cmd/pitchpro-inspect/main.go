// Package main provides pitchpro-inspect, a diagnostic tool for the
// reconciliation core: it resolves account roles and dumps dashboard bundles
// straight from the document store, bypassing the web layer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pitchpro-inspect",
	Short: "Inspect role resolution and dashboard reconciliation",
	Long:  "pitchpro-inspect resolves the canonical role of an account and assembles its dashboard bundle directly against the document store, showing which legacy collections satisfied each entity set.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
