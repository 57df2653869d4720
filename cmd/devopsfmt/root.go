package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hamed-Ayodeji/devopsfmt"
	"github.com/Hamed-Ayodeji/devopsfmt/internal/config"
	"github.com/Hamed-Ayodeji/devopsfmt/internal/logging"
	"github.com/Hamed-Ayodeji/devopsfmt/internal/section"
)

// rootOptions holds flag values that are not routed through config.
type rootOptions struct {
	configPath string
}

// env is the per-invocation state built from config.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *section.Registry
	format   devopsfmt.Format
	border   devopsfmt.BorderStyle
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	names := section.Default().Names()

	cmd := &cobra.Command{
		Use:   "devopsfmt <type> [file]",
		Short: "Format and display the output of devopsfetch.sh",
		Long: `devopsfmt reads the raw output of devopsfetch.sh from a file or standard
input and prints it as an aligned table.

Types: ` + strings.Join(names, ", "),
		Args:          cobra.MatchAll(cobra.RangeArgs(1, 2), validType),
		ValidArgs:     names,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			sec, err := e.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			data, source, err := readInput(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}
			e.log.Debug("read input", zap.String("source", source), zap.Int("bytes", len(data)))

			rows := sec.Parse(data)
			e.log.Debug("parsed rows",
				zap.String("section", sec.Name),
				zap.Stringer("split", sec.Split),
				zap.Int("rows", len(rows)),
			)

			out := cmd.OutOrStdout()
			return sec.Render(out, rows, e.renderOptions(out))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (optional)")
	flags.StringP("output", "o", string(devopsfmt.Table), "Output format ("+formatList()+", go-template=<tmpl>)")
	flags.StringP("border", "b", devopsfmt.BorderGrid.String(), "Table border style ("+strings.Join(devopsfmt.Borders(), ", ")+")")
	flags.String("color", config.ColorAuto, "Bold table headers: auto, always, never")
	flags.BoolP("verbose", "v", false, "Log diagnostics to stderr")
	flags.StringP("title", "t", "", "Title drawn above bordered tables and used as the HTML caption")

	cmd.AddCommand(newSectionsCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// validType rejects unknown section names before any input is read. It
// checks the built-in registry because config can override sections but not
// add them, so the names always match the registry RunE looks up.
func validType(cmd *cobra.Command, args []string) error {
	_, err := section.Default().Lookup(args[0])
	return err
}

// setup loads config and builds the logger and section registry.
func setup(cmd *cobra.Command, opts *rootOptions) (*env, error) {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	log.Debug("loaded config",
		zap.String("source", cfg.Source),
		zap.String("output", cfg.Output),
		zap.String("border", cfg.Border),
		zap.String("color", cfg.Color),
	)

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	format, err := devopsfmt.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	border, err := devopsfmt.ParseBorder(cfg.Border)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, registry: registry, format: format, border: border}, nil
}

func (e *env) renderOptions(out io.Writer) section.Options {
	return section.Options{
		Format:      e.format,
		Border:      e.border,
		HeaderStyle: headerStyle(e.cfg.Color, out),
		Title:       e.cfg.Title,
	}
}

// readInput reads the whole of the named file, or r when no file (or "-")
// is given. It returns the data and a description of where it came from.
func readInput(r io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", "", fmt.Errorf("read input: %w", err)
		}
		return string(b), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return string(b), args[0], nil
}

func formatList() string {
	names := make([]string, 0, len(devopsfmt.Formats()))
	for _, f := range devopsfmt.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
