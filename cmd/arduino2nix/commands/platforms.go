package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/arduino2nix/internal/app"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms [URL]",
		Short: "List the platform references a package index offers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := domain.DefaultIndexURL
			if len(args) == 1 {
				url = args[0]
			}
			vendor, _ := cmd.Flags().GetString("vendor")
			return c.app.Platforms(cmd.Context(), app.PlatformsOptions{
				Root:      projectRoot(cmd),
				URL:       url,
				Vendor:    vendor,
				Overrides: overrides(cmd),
			})
		},
	}
	cmd.Flags().String("vendor", "", "Only list platforms of this package")
	cmd.Flags().Duration("fetch-timeout", 60*time.Second, "Timeout for the index download")
	return cmd
}
