package main

import (
	"os"

	"github.com/spf13/cobra"

	"academy/internal/interfaces/cli/migrate"
	"academy/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "academy",
		Short: "Academy - rule-based course assignment for corporate training",
		Long:  `Academy manages employees, courses, and the assignment rules that enroll employees into training automatically.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
