// Package cli wires the matrixed commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gbr1/matrix-editor/internal/config"
	"github.com/gbr1/matrix-editor/internal/logging"
	"github.com/gbr1/matrix-editor/internal/viz"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Debug      string

	cleanup func()
}

// loadConfig returns the config file's settings, or the defaults when no
// file was given.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if !viz.HasTheme(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	return cfg, nil
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	tuiOpts := &tuiOptions{}

	cmd := &cobra.Command{
		Use:           "matrixed",
		Short:         "8x13 bit matrix editor",
		Long:          "Draw on an 8x13 LED matrix, encode it as four 32-bit words and build storyboards of frames.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logging.Setup(opts.Debug)
			if err != nil {
				return fmt.Errorf("debug log: %w", err)
			}
			opts.cleanup = cleanup
			logging.Infof("matrixed %s: %s", Version, cmd.CommandPath())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.cleanup != nil {
				opts.cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the editor when no command given
			return runTUI(opts, tuiOpts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (yaml)")
	cmd.PersistentFlags().StringVar(&opts.Debug, "debug", "", "append debug log to file")

	cmd.AddCommand(NewTUICommand(opts, tuiOpts))
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewPresetsCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matrixed %s\n", Version)
		},
	}
}
