package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/logging"
	"github.com/gbr1/matrix-editor/internal/schedule"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/viz"
)

type playOptions struct {
	Loops    int
	Interval time.Duration
}

func NewPlayCommand(root *RootOptions) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play <frame>...",
		Short: "play a storyboard of states or preset names in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			sb, err := parseBoard(args)
			if err != nil {
				return err
			}
			interval := opts.Interval
			if interval <= 0 {
				interval = cfg.PlaybackInterval()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return play(ctx, cmd, sb, interval, opts.Loops)
		},
	}
	cmd.Flags().IntVar(&opts.Loops, "loops", 1, "times through the storyboard (0 = until interrupted)")
	cmd.Flags().DurationVar(&opts.Interval, "interval", 0, "time per frame (default from config)")
	return cmd
}

func play(ctx context.Context, cmd *cobra.Command, sb *storyboard.Storyboard, interval time.Duration, loops int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	loop := schedule.NewLoop()
	g := grid.New()
	p := storyboard.NewPlayer(sb, g, loop)

	total := loops * sb.Len()
	shown := 0
	p.OnFrame = func(i int) {
		fmt.Fprintf(out, "frame #%d\n%s\n", i+1, viz.PlainGrid(g))
		shown++
		if total > 0 && shown >= total {
			p.Stop()
			cancel()
		}
	}
	if !p.Start(interval) {
		return storyboard.ErrNoFrame
	}
	logging.Infof("play: %d frames every %v", sb.Len(), interval)

	err := loop.Run(ctx)
	p.Stop()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
