package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	dawg "github.com/milden6/anadawg"
	"github.com/milden6/anadawg/anagram"
	"github.com/milden6/anadawg/config"
)

// app is the state shared by every command once the configuration is read.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:          "anadawg",
		Short:        "Find every word that can be made from a rack of letters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is ./anadawg.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")

	rootCmd.AddCommand(
		newSearchCmd(a),
		newCompileCmd(a),
		newInfoCmd(a),
		newWordsCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.log = cfg.Logger()
	return nil
}

func (a *app) openStore() (*dawg.Store, error) {
	start := time.Now()
	store, err := a.cfg.OpenStore()
	if err != nil {
		a.log.Error().Err(err).Str("format", a.cfg.Dictionary.Format).Msg("cannot open dictionary")
		return nil, err
	}

	a.log.Info().
		Str("format", a.cfg.Dictionary.Format).
		Int("nodes", store.NumNodes()).
		Int("edges", store.NumEdges()).
		Str("root", store.RootMask().String()).
		Dur("elapsed", time.Since(start)).
		Msg("dictionary loaded")
	return store, nil
}

func (a *app) openEngine() (*anagram.Engine, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}

	return anagram.New(store,
		anagram.WithLogger(a.log),
		anagram.WithMaxRackLength(a.cfg.Search.MaxRackLength),
		anagram.WithWorkers(a.cfg.Search.Workers),
	), nil
}
