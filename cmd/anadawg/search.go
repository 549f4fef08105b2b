package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search LETTERS...",
		Short: "Print the words that can be made from each rack",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.openEngine()
			if err != nil {
				return err
			}

			results, err := engine.SearchAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, words := range results {
				if len(args) > 1 {
					fmt.Fprintf(out, "# %s (%d)\n", args[i], len(words))
				}
				for _, word := range words {
					fmt.Fprintln(out, word)
				}
			}
			return nil
		},
	}
}
