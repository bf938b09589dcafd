package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rentora/rentora/modules/fleet/importing"
)

var output string

var rootCmd = &cobra.Command{
	Use:   "fleet-template",
	Short: "Generate the vehicle import template workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer func() {
			_ = f.Close()
		}()

		if err := importing.WriteTemplate(f); err != nil {
			return err
		}
		cmd.Printf("template written to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "vehicles_import_template.xlsx", "output file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
