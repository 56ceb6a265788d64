package venuecmd

import (
	"github.com/spf13/cobra"

	"bibtool/src/cmd/bibtool/cliopts"
	"bibtool/src/internal/lint"
	"bibtool/src/internal/report"
	"bibtool/src/internal/store"
)

// New returns the venuechk command reporting venues named inconsistently.
func New(opts *cliopts.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "venuechk [INPUT]",
		Short:        "Check consistency in venue naming",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config(cmd)
			if err != nil {
				return err
			}
			styler, err := opts.Styler(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			coll, err := store.ReadFile(cliopts.Input(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout(), styler).Groups(lint.VenueVariants(coll.Lower()))
		},
	}
}
