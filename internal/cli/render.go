package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gbr1/matrix-editor/internal/export"
	"github.com/gbr1/matrix-editor/internal/viz"
)

type renderOptions struct {
	SVG   string
	Sheet string
	GIF   string
	Scale int
	Theme string
}

func NewRenderCommand(root *RootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <frame>...",
		Short: "write frames as SVG or animated GIF",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.SVG == "" && opts.Sheet == "" && opts.GIF == "" {
				return errors.New("nothing to render: pass --svg, --sheet or --gif")
			}
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if opts.Theme != "" {
				if !viz.HasTheme(opts.Theme) {
					return fmt.Errorf("unknown theme %q (available: %v)", opts.Theme, viz.ThemeNames())
				}
				cfg.Theme = opts.Theme
			}
			theme := viz.GetTheme(cfg.Theme)
			sb, err := parseBoard(args)
			if err != nil {
				return err
			}
			frames := sb.Frames()
			out := cmd.OutOrStdout()

			if opts.SVG != "" {
				svg := export.GridToSVG(frames[0].Grid(), opts.Scale, theme)
				if err := os.WriteFile(opts.SVG, []byte(svg), 0644); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", opts.SVG)
			}
			if opts.Sheet != "" {
				svg := export.StoryboardSheetSVG(frames, float64(opts.Scale)/2, theme)
				if err := os.WriteFile(opts.Sheet, []byte(svg), 0644); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", opts.Sheet)
			}
			if opts.GIF != "" {
				f, err := os.Create(opts.GIF)
				if err != nil {
					return err
				}
				if err := export.StoryboardGIF(f, frames, opts.Scale, cfg.PlaybackInterval(), theme); err != nil {
					f.Close()
					return fmt.Errorf("encode gif: %w", err)
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s (%d frames)\n", opts.GIF, len(frames))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.SVG, "svg", "", "write the first frame as SVG")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "write every frame side by side as SVG")
	cmd.Flags().StringVar(&opts.GIF, "gif", "", "write all frames as an animated GIF")
	cmd.Flags().IntVar(&opts.Scale, "scale", 20, "pixels per cell")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme (default from config)")
	return cmd
}
