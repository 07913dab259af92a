// Package main provides the CLI entry point for the Creditsafe connector.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/journal"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "creditsafe [input.xlsm]",
		Short: "Retrieve company financials from Creditsafe into a report workbook",
		Long: `creditsafe reads credentials and a company list from the input workbook,
retrieves each company from the Creditsafe Connect API and writes one report
tab per company into the output workbook named in the configuration tab.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := creditsafe.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if len(args) == 1 {
		settings.InputOverride = args[0]
	}

	j, err := journal.Open(settings.LogPath(), os.Stdout, settings.Level())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer j.Close()

	return creditsafe.NewRunner(settings, j).Run(cmd.Context())
}
