package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	dawg "github.com/milden6/anadawg"
)

func newWordsCmd(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List every word in the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			prefix = strings.ToLower(prefix)
			out := bufio.NewWriter(cmd.OutOrStdout())
			store.Enumerate(func(word []byte, final bool) dawg.EnumerationResult {
				n := min(len(word), len(prefix))
				if string(word[:n]) != prefix[:n] {
					return dawg.Skip
				}
				if final && len(word) >= len(prefix) {
					out.Write(word)
					out.WriteByte('\n')
				}
				return dawg.Continue
			})
			return out.Flush()
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only list words starting with this")
	return cmd
}
