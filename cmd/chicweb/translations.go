package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chiclang/chicweb/pkg/content"
)

func (a *app) translationsCmd() *cobra.Command {
	var (
		kind        string
		onlyMissing bool
	)

	cmd := &cobra.Command{
		Use:   "translations",
		Short: "Show which docs or posts are translated into each locale",
		Long: `Prints one row per docs entry or blog post and one column per locale.
"ok" marks a locale with its own file, "--" a locale served from the default locale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := a.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			report, err := s.Translations(cmd.Context(), content.Kind(kind))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "SLUG\t%s\n", strings.Join(report.Locales, "\t"))

			missing := 0
			for _, row := range report.Rows {
				n := len(report.Missing(row))
				missing += n
				if onlyMissing && n == 0 {
					continue
				}
				cells := make([]string, len(row.Translated))
				for i, ok := range row.Translated {
					cells[i] = "--"
					if ok {
						cells[i] = "ok"
					}
				}
				fmt.Fprintf(tw, "%s\t%s\n", row.Slug, strings.Join(cells, "\t"))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			total := len(report.Rows) * len(report.Locales)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d %s translations missing\n", missing, total, report.Kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(content.KindDoc), "content kind: docs or blog")
	cmd.Flags().BoolVar(&onlyMissing, "missing", false, "only list entries with missing translations")
	return cmd
}
