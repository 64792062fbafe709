package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gbr1/matrix-editor/internal/config"
	"github.com/gbr1/matrix-editor/internal/viz"
	"github.com/gbr1/matrix-editor/internal/words"
)

func NewPresetsCommand(root *RootOptions) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			title := cases.Title(language.English)
			if show {
				for _, name := range config.ListPresets() {
					fmt.Fprintf(out, "%s\n%s\n", title.String(name), viz.PlainGrid(config.GetPreset(name)))
				}
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tCELLS\tEXPORT")
			for _, name := range config.ListPresets() {
				g := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, title.String(name), g.Count(), words.ExportText(words.Encode(g.Bits())))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "draw each pattern")
	return cmd
}
