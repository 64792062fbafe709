package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/gbr1/matrix-editor/internal/clipboard"
	"github.com/gbr1/matrix-editor/internal/tui"
)

type tuiOptions struct {
	Theme  string
	Preset string
	Seed   int64
}

func NewTUICommand(root *RootOptions, opts *tuiOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "initial pattern")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

func runTUI(root *RootOptions, opts *tuiOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.Preset != "" {
		cfg.Preset = opts.Preset
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cb, err := clipboard.New(cfg.Clipboard)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Config:    cfg,
		Clipboard: cb,
		Rand:      rand.New(rand.NewSource(cfg.SeedOrNow())),
	})
}
