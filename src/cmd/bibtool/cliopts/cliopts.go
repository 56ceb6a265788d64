// Package cliopts carries the root command's persistent flags to sub-commands.
package cliopts

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bibtool/src/internal/config"
	"bibtool/src/internal/report"
	"bibtool/src/internal/store"
	"bibtool/src/internal/stringsx"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigPath string
	Color      string
}

// Bind registers the persistent flags on root.
func (o *Options) Bind(root *cobra.Command) {
	root.PersistentFlags().StringVar(&o.ConfigPath, "config", "", "Rule file (default $"+config.EnvFile+" or "+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&o.Color, "color", "", "Color output: auto, always or never")
}

// Config loads the rule file named by --config or the environment, and
// warns about required-field types nobody uses.
func (o *Options) Config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(stringsx.FirstNonEmpty(o.ConfigPath, os.Getenv(config.EnvFile)))
	if err != nil {
		return nil, err
	}
	for _, typ := range cfg.UnknownTypes() {
		if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "warning: config requires fields for unknown entry type %q\n", typ); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Styler resolves the color mode: NO_COLOR wins, then --color, then the file.
func (o *Options) Styler(w io.Writer, cfg *config.Config) (report.Styler, error) {
	mode := stringsx.FirstNonEmpty(o.Color, cfg.Color, config.ColorAuto)
	if err := config.ValidateColor(mode); err != nil {
		return nil, err
	}
	if os.Getenv("NO_COLOR") != "" {
		mode = config.ColorNever
	}
	return report.StylerFor(w, mode), nil
}

// Input returns the input path argument, "-" when absent.
func Input(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return store.Stdio
}
