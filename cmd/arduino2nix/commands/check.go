package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/arduino2nix/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that Arduino.nix matches the current sketch.yaml",
		Long: "Compare the fingerprint recorded in the build description with the current sketch.yaml.\n" +
			"Exits with status 1 when the description is missing or out of date. No index is fetched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output-file")
			return c.app.Check(cmd.Context(), app.CheckOptions{
				Root:       projectRoot(cmd),
				OutputFile: output,
				Overrides:  overrides(cmd),
			})
		},
	}
	cmd.Flags().StringP("output-file", "o", "", "Description to check (default <project-root>/Arduino.nix)")
	return cmd
}
