// Package commands implements the CLI commands for cargo-3pl.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/3pl/internal/app"
	"go.trai.ch/3pl/internal/build"
	"go.trai.ch/3pl/internal/core/domain"
)

// CLI represents the command line interface for cargo-3pl.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components. The root
// command itself produces the report; cargo invokes the binary as
// "cargo-3pl 3pl", so a single literal "3pl" positional is accepted and
// ignored.
func New(components *app.Components) *CLI {
	c := &CLI{components: components}

	rootCmd := &cobra.Command{
		Use:           "cargo-3pl [3pl] [OPTIONS]",
		Short:         "Generate a third-party license report for a cargo project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		ValidArgs:     []string{"3pl"},
		Args:          cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE:          c.runReport,
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

	flags := rootCmd.Flags()
	flags.StringArray("features", nil, "Space or comma separated list of features to activate")
	flags.Bool("all-features", false, "Activate all available features")
	flags.Bool("no-default-features", false, "Do not activate the default feature")
	flags.StringArray("target", nil, "Filter dependencies matching the given target-triple")
	flags.Bool("require-files", false, "Require all dependencies to have license files")
	flags.String("source", "", "Path for license files (experimental)")
	flags.Bool("show-url", false, "Show the package url (experimental)")
	flags.String("color", "auto", "When to color stderr output: auto, always or never")
	_ = flags.MarkHidden("show-url")

	c.rootCmd = rootCmd
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

func (c *CLI) runReport(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := c.components.ConfigLoader.Load(cwd)
	if err != nil {
		return err
	}

	opts, mode, err := mergeOptions(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	c.components.Logger.SetColorMode(mode)
	return c.components.App.Run(cmd.Context(), opts)
}

// mergeOptions combines command-line flags with 3pl.yaml defaults.
// An explicitly set flag always wins over the file value.
func mergeOptions(flags *pflag.FlagSet, cfg domain.Config) (app.RunOptions, domain.ColorMode, error) {
	opts := app.RunOptions{
		Query: domain.QueryOptions{
			Features:          cfg.Features,
			AllFeatures:       cfg.AllFeatures,
			NoDefaultFeatures: cfg.NoDefaultFeatures,
			Targets:           cfg.Targets,
		},
		RequireFiles: cfg.RequireFiles,
		VendorDir:    cfg.VendorDir,
	}

	if flags.Changed("features") {
		opts.Query.Features, _ = flags.GetStringArray("features")
	}
	if flags.Changed("all-features") {
		opts.Query.AllFeatures, _ = flags.GetBool("all-features")
	}
	if flags.Changed("no-default-features") {
		opts.Query.NoDefaultFeatures, _ = flags.GetBool("no-default-features")
	}
	if flags.Changed("target") {
		opts.Query.Targets, _ = flags.GetStringArray("target")
	}
	if flags.Changed("require-files") {
		opts.RequireFiles, _ = flags.GetBool("require-files")
	}
	if flags.Changed("source") {
		opts.VendorDir, _ = flags.GetString("source")
	}
	opts.ShowURL, _ = flags.GetBool("show-url")

	mode := cfg.Color
	if mode == "" {
		mode = domain.ColorAuto
	}
	if flags.Changed("color") {
		raw, _ := flags.GetString("color")
		parsed, err := domain.ParseColorMode(raw)
		if err != nil {
			return app.RunOptions{}, "", err
		}
		mode = parsed
	}

	return opts, mode, nil
}
