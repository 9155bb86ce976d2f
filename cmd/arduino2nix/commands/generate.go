package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/arduino2nix/internal/app"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write Arduino.nix for the sketch in the project root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output-file")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				Root:       projectRoot(cmd),
				OutputFile: output,
				Watch:      watch,
				Overrides:  overrides(cmd),
			})
		},
	}
	cmd.Flags().StringP("output-file", "o", "", "Write the description to `PATH`, or - for standard output (default <project-root>/Arduino.nix)")
	cmd.Flags().Bool("no-format", false, "Skip formatting the description")
	cmd.Flags().String("formatter", "nixfmt", "Formatter command the description is piped through")
	cmd.Flags().Bool("match-version", false, "Only match index entries whose version equals the reference")
	cmd.Flags().Duration("fetch-timeout", 60*time.Second, "Timeout for each package index download")
	cmd.Flags().String("progress", string(domain.ProgressAuto), "Print resolution progress: auto, always or never")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever sketch.yaml changes")
	return cmd
}
