package main

import (
	"os"

	"github.com/spf13/cobra"

	"sanad/internal/interfaces/cli/migrate"
	"sanad/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sanad",
		Short: "Sanad beneficiary support portal",
		Long:  `Sanad is the backend for a beneficiary support portal: profiles, assistance applications, community forum, case worker messaging, and an information portal.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
