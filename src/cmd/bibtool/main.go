package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bibtool/src/cmd/bibtool/checkcmd"
	"bibtool/src/cmd/bibtool/cliopts"
	"bibtool/src/cmd/bibtool/dupcmd"
	"bibtool/src/cmd/bibtool/formatcmd"
	"bibtool/src/cmd/bibtool/venuecmd"
)

func newRootCmd() *cobra.Command {
	opts := &cliopts.Options{}
	root := &cobra.Command{
		Use:           "bibtool",
		Short:         "BibTeX checker and formatter",
		SilenceErrors: true,
	}
	opts.Bind(root)
	root.AddCommand(checkcmd.New(opts))
	root.AddCommand(dupcmd.New(opts))
	root.AddCommand(venuecmd.New(opts))
	root.AddCommand(formatcmd.New(opts))
	return root
}

func execute(args []string) error {
	// .env may set BIBTOOL_CONFIG or NO_COLOR for a project.
	_ = godotenv.Load()
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
