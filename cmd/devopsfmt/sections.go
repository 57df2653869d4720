package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hamed-Ayodeji/devopsfmt"
)

func newSectionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the available types and how their input is split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			t := &devopsfmt.Data{
				Header: []string{"TYPE", "COLUMNS", "SPLIT", "EXACT"},
				Border: e.border,
			}
			for _, s := range e.registry.Sections() {
				t.Rows = append(t.Rows, []string{
					s.Name,
					strings.Join(s.Header, ", "),
					s.Split.String(),
					strconv.FormatBool(s.Exact),
				})
			}
			out := cmd.OutOrStdout()
			t.HeaderStyle = headerStyle(e.cfg.Color, out)
			return devopsfmt.Write(out, e.format, t)
		},
	}
}
