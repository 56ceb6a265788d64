package dupcmd

import (
	"github.com/spf13/cobra"

	"bibtool/src/cmd/bibtool/cliopts"
	"bibtool/src/internal/lint"
	"bibtool/src/internal/report"
	"bibtool/src/internal/store"
)

// New returns the dupcheck command reporting entries with the same normalized title.
func New(opts *cliopts.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "dupcheck [INPUT]",
		Short:        "Check INPUT for duplicate entries",
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
			return report.NewPrinter(cmd.OutOrStdout(), styler).Groups(lint.DuplicateTitles(coll.Lower()))
		},
	}
}
