package checkcmd

import (
	"github.com/spf13/cobra"

	"bibtool/src/cmd/bibtool/cliopts"
	"bibtool/src/internal/lint"
	"bibtool/src/internal/report"
	"bibtool/src/internal/store"
)

// New returns the check command: key convention, page ranges, empty and missing fields.
func New(opts *cliopts.Options) *cobra.Command {
	var disableKeyCheck bool
	cmd := &cobra.Command{
		Use:          "check [INPUT]",
		Short:        "Check INPUT for inconsistencies",
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
			findings := lint.Check(coll.Lower(), cfg.Rules(), lint.Options{SkipKeyCheck: disableKeyCheck})
			return report.NewPrinter(cmd.OutOrStdout(), styler).Findings(findings)
		},
	}
	cmd.Flags().BoolVarP(&disableKeyCheck, "disable-good-key-check", "d", false, "Disable checking of good key")
	return cmd
}
