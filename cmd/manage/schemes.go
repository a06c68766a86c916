package main

import (
	"fmt"
	"strings"

	"legal-buddy/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var schemesFile string

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Inspect the scheme dataset",
}

var schemesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the dataset and report what the server would serve",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := schemesFile
		if path == "" {
			path = cfg.Schemes.File
		}

		repo := repository.LoadSchemes(path, log)
		if repo.Count() == 0 {
			return fmt.Errorf("no schemes loaded from %s", path)
		}

		missingWebsite := 0
		for _, s := range repo.All() {
			if s.OfficialWebsite == nil {
				missingWebsite++
				log.Debug("Scheme has no official website", zap.String("id", s.ID))
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Schemes:    %d\n", repo.Count())
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(repo.Categories(), ", "))
		fmt.Fprintf(out, "No website: %d\n", missingWebsite)
		return nil
	},
}

func init() {
	schemesCheckCmd.Flags().StringVarP(&schemesFile, "file", "f", "", "dataset path (defaults to SCHEMES_FILE)")
	schemesCmd.AddCommand(schemesCheckCmd)
	rootCmd.AddCommand(schemesCmd)
}
