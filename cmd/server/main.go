// Package main is the entry point for the forge-api server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgebound/forge-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "forge-api",
	Short: "Forgebound account and cloud-save API",
	Long:  `forge-api serves account authentication and cloud save sync for the Forgebound idle crafting game.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
