// Package cli implements the transition command, a tool for inspecting the
// curves of the transition package.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"honnef.co/go/transition"
	"honnef.co/go/transition/internal/config"
	"honnef.co/go/transition/internal/logging"
	"honnef.co/go/transition/internal/version"
)

type rootOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "transition",
		Short: "Inspect easing curves",
		Long: `transition lists, samples and plots the easing curves of the transition
package, along with any curves defined in a config file.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (TOML or YAML) with settings and custom curves")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newSampleCmd(opts))
	rootCmd.AddCommand(newPlotCmd(opts))

	return rootCmd
}

// setup loads the configuration and returns it along with a registry holding
// the built-in and configured curves.
func (opts *rootOptions) setup(overrides map[string]any) (*config.Config, *transition.Registry, error) {
	cfg, err := config.Load(opts.configPath, overrides)
	if err != nil {
		return nil, nil, err
	}
	r := transition.NewRegistry()
	transition.RegisterBuiltins(r)
	if err := config.Apply(r, cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to register curves: %w", err)
	}
	return cfg, r, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "transition version %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
