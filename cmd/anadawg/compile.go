package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	dawg "github.com/milden6/anadawg"
)

const (
	supersFile = "new-super.txt"
	wordsFile  = "new-words.txt"
	binaryFile = "dictionary.dawg"
)

func newCompileCmd(a *app) *cobra.Command {
	var (
		input  string
		outDir string
		binary bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a word list into dictionary tables",
		Long: `Compile reads one word per line and writes the bitmask table
(new-super.txt) and the child table (new-words.txt) to the output
directory, and with --binary also the packed dictionary.dawg.
The root mask to configure is printed on success.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return err
			}
			defer f.Close()

			store, err := dawg.CompileReader(f)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			supers := filepath.Join(outDir, supersFile)
			words := filepath.Join(outDir, wordsFile)
			if err := store.SaveText(supers, words); err != nil {
				return err
			}
			a.log.Info().Str("supers", supers).Str("words", words).Msg("wrote text tables")

			if binary {
				path := filepath.Join(outDir, binaryFile)
				size, err := store.Save(path)
				if err != nil {
					return err
				}
				a.log.Info().Str("path", path).Int64("bytes", size).Msg("wrote binary dictionary")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "nodes: %d\nedges: %d\nrootMask: %d\n",
				store.NumNodes(), store.NumEdges(), uint32(store.RootMask()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "word list, one word per line")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&binary, "binary", false, "also write the binary form")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
