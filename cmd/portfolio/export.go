package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vicheka.dev/internal/export"
	"vicheka.dev/internal/handlers"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Render every page to static HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, handler, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		outputDir := args[0]
		ex := export.New(handler, outputDir, export.WithLogger(logger))
		pages, runErr := ex.Run(cmd.Context(), handlers.Paths)

		out := cmd.OutOrStdout()
		for _, p := range pages {
			if p.Err != nil {
				fmt.Fprintf(os.Stderr, "  ERROR %s: %v\n", p.Path, p.Err)
				continue
			}
			fmt.Fprintf(out, "  Created %s\n", p.File)
		}
		if runErr != nil {
			return runErr
		}

		fmt.Fprintln(out, "Done!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
