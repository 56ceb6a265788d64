package formatcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bibtool/src/cmd/bibtool/cliopts"
	"bibtool/src/internal/store"
)

// New returns the fmt command which sorts INPUT and writes canonical BibTeX to OUTPUT.
func New(opts *cliopts.Options) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:          "fmt [INPUT [OUTPUT]]",
		Short:        "Clean up the INPUT bibtex file and write to OUTPUT",
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Width
			}
			if width < 0 {
				return fmt.Errorf("width must be >= 0, got %d", width)
			}
			coll, err := store.ReadFile(cliopts.Input(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := store.Stdio
			if len(args) > 1 {
				out = args[1]
			}
			return store.Writer{Width: width}.WriteFile(out, cmd.OutOrStdout(), coll)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap field values at this column (0 disables)")
	return cmd
}
