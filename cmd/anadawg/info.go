package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the configured dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes: %d\n", store.NumNodes())
			fmt.Fprintf(out, "edges: %d\n", store.NumEdges())
			fmt.Fprintf(out, "rootMask: %d (%s)\n", uint32(store.RootMask()), store.RootMask())
			fmt.Fprintf(out, "words: %d\n", len(store.Words()))
			return nil
		},
	}
}
