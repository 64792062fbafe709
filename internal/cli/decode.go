package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/viz"
	"github.com/gbr1/matrix-editor/internal/words"
)

func NewDecodeCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <0x........,0x........,0x........,0x........>",
		Short: "print the grid behind an exported frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := words.ParseExport(args[0])
			if err != nil {
				return err
			}
			g, err := grid.FromState(words.Decode(values))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, viz.PlainGrid(g))
			fmt.Fprintf(out, "state   %s\n", g.State())
			return nil
		},
	}
}

func NewImportCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import [text]",
		Short: "load a frame from text, keeping only 0 and 1 (reads stdin without args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				raw = string(data)
			}
			g := grid.New()
			if err := storyboard.ImportFrame(raw, g); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Invalid frame")
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.PlainGrid(g))
			return writeEncoding(cmd.OutOrStdout(), g, "text")
		},
	}
}
