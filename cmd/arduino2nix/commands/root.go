// Package commands implements the CLI commands for arduino2nix.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/arduino2nix/internal/adapters/config"
	"go.trai.ch/arduino2nix/internal/app"
	"go.trai.ch/arduino2nix/internal/build"
)

// CLI represents the command line interface for arduino2nix.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
	Check(ctx context.Context, opts app.CheckOptions) error
	Platforms(ctx context.Context, opts app.PlatformsOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "arduino2nix",
		Short:         "Generate a Nix build description from an Arduino sketch.yaml",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("project-root", "C", ".", "Directory containing sketch.yaml")
	rootCmd.PersistentFlags().String("log-format", "pretty", "Log output format: pretty or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newPlatformsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func projectRoot(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("project-root")
	return root
}

// overrides collects the setting flags the user actually passed, keyed by
// setting name, so unset flags do not shadow the environment or the
// settings file.
func overrides(cmd *cobra.Command) map[string]any {
	values := make(map[string]any)
	flags := cmd.Flags()

	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		values[config.KeyLogFormat] = v
	}
	if flags.Changed("formatter") {
		v, _ := flags.GetString("formatter")
		values[config.KeyFormatter] = v
	}
	if flags.Changed("no-format") {
		v, _ := flags.GetBool("no-format")
		values[config.KeyNoFormat] = v
	}
	if flags.Changed("match-version") {
		v, _ := flags.GetBool("match-version")
		values[config.KeyMatchVersion] = v
	}
	if flags.Changed("fetch-timeout") {
		v, _ := flags.GetDuration("fetch-timeout")
		values[config.KeyFetchTimeout] = v
	}
	if flags.Changed("progress") {
		v, _ := flags.GetString("progress")
		values[config.KeyProgress] = v
	}
	return values
}
