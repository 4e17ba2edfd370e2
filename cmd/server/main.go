// Package main is the entry point for the alignment server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alignment/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-alignment",
	Short: "RPG Alignment gRPC Server",
	Long:  `RPG Alignment tracks character alignment on a law/moral grid and renders party and sheet views.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
