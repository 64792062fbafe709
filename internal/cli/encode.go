package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/viz"
	"github.com/gbr1/matrix-editor/internal/words"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

type encodeOptions struct {
	Preset string
	Format string
}

// EncodeResult is the json form of the encode command.
type EncodeResult struct {
	State  string                  `json:"state"`
	Binary string                  `json:"binary"`
	Words  [words.WordCount]uint32 `json:"words"`
	Hex    [words.WordCount]string `json:"hex"`
	Export string                  `json:"export"`
}

func NewEncodeCommand(root *RootOptions) *cobra.Command {
	opts := &encodeOptions{}
	cmd := &cobra.Command{
		Use:   "encode [state]",
		Short: "encode a frame as four 32-bit words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			var g *grid.Grid
			var err error
			switch {
			case len(args) == 1:
				g, err = parseFrame(args[0])
			case opts.Preset != "":
				g, err = parseFrame(opts.Preset)
			default:
				g = grid.New()
			}
			if err != nil {
				return err
			}
			return writeEncoding(cmd.OutOrStdout(), g, opts.Format)
		},
	}
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "encode a built-in pattern")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	return cmd
}

func encodeResult(g *grid.Grid) EncodeResult {
	ws := words.Encode(g.Bits())
	return EncodeResult{
		State:  g.State(),
		Binary: words.BinaryDisplay(g.State()),
		Words:  words.Values(ws),
		Hex:    words.Hex(ws),
		Export: words.ExportText(ws),
	}
}

func writeEncoding(w io.Writer, g *grid.Grid, format string) error {
	res := encodeResult(g)
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "state   %s\n", res.State)
	fmt.Fprintf(w, "binary  %s\n", res.Binary)
	for i, word := range words.Encode(g.Bits()) {
		fmt.Fprintln(w, viz.WordLabel(i, word))
	}
	fmt.Fprintf(w, "export  %s\n", res.Export)
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
