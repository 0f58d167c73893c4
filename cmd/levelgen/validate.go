package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stackwords/internal/puzzle"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load every level and report problems",
		Long: `validate loads the level and dictionary files the way the server does.
Load failures always exit non-zero. Targets missing from the dictionary and
levels whose letters overflow cols x rows are reported, and fail the run only
with --strict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			levels, err := root.loadLevels()
			if err != nil {
				return err
			}
			dict, err := root.loadDictionary()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := 0
			for _, l := range levels {
				if missing := puzzle.MissingFromDictionary(l, dict); len(missing) > 0 {
					fmt.Fprintf(out, "level %d: not in dictionary: %s\n", l.ID, strings.Join(missing, ", "))
					problems++
				}
				if n, capacity := puzzle.LetterCount(l), puzzle.Capacity(l); n > capacity {
					fmt.Fprintf(out, "level %d: %d letters do not fit %dx%d\n", l.ID, n, l.Cols, l.Rows)
					problems++
				}
			}
			fmt.Fprintf(out, "%d levels, %d dictionary words, %d problems\n", len(levels), dict.Len(), problems)
			if strict && problems > 0 {
				return fmt.Errorf("%d problems found", problems)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any problem is reported")
	return cmd
}
