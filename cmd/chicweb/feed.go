package main

import (
	"github.com/spf13/cobra"
)

func (a *app) feedCmd() *cobra.Command {
	var loc string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Write a locale's blog RSS feed to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := a.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if loc == "" {
				loc = s.Config().DefaultLocale
			}
			return s.WriteFeed(cmd.Context(), cmd.OutOrStdout(), loc)
		},
	}
	cmd.Flags().StringVar(&loc, "locale", "", "feed locale (default DEFAULT_LOCALE)")
	return cmd
}
