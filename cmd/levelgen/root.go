package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackwords/internal/puzzle"
	"stackwords/internal/types"
)

type rootOptions struct {
	levelsFile     string
	dictionaryFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "levelgen",
		Short: "Preview and check stackwords level files",
		Long: `levelgen works on the level and dictionary files the server loads.

Print the board level 3 generates with seed 42
	levelgen show --level 3 --seed 42

Check every level against the dictionary
	levelgen validate
`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.levelsFile, "levels", "l", "data/levels.json", "Level file (.json, .yaml or .yml)")
	cmd.PersistentFlags().StringVarP(&opts.dictionaryFile, "dictionary", "d", "data/dictionary.txt", "Newline-delimited dictionary file")

	cmd.AddCommand(newShowCmd(opts), newValidateCmd(opts))
	return cmd
}

func (o *rootOptions) loadLevels() ([]types.LevelConfig, error) {
	f, err := os.Open(o.levelsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	levels, err := puzzle.ReadLevels(f, puzzle.FormatFromPath(o.levelsFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.levelsFile, err)
	}
	return levels, nil
}

func (o *rootOptions) loadDictionary() (*puzzle.Dictionary, error) {
	f, err := os.Open(o.dictionaryFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return puzzle.ReadDictionary(f)
}
