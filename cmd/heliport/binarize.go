package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZJaume/heliport/binarize"
	"github.com/ZJaume/heliport/lang"
)

func newBinarizeCmd() *cobra.Command {
	var (
		relevantLangs     []string
		pruneRatio        float64
		allowMissingLangs bool
	)

	cmd := &cobra.Command{
		Use:   "binarize <plain-text-model-dir> <output-dir>",
		Short: "Build a binary model image from plain-text n-gram count files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var langs []lang.Lang
			if len(relevantLangs) > 0 {
				for _, c := range relevantLangs {
					l, ok := lang.Parse(strings.TrimSpace(c))
					if !ok {
						return userError("unknown language code %q in --relevant-langs", c)
					}
					langs = append(langs, l)
				}
			}

			_, err := binarize.Binarize(binarize.Options{
				ModelDir:          args[0],
				OutputDir:         args[1],
				RelevantLangs:     langs,
				PruneRatio:        pruneRatio,
				AllowMissingLangs: allowMissingLangs,
			})
			if err != nil {
				return internalError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&relevantLangs, "relevant-langs", "l", nil, "comma-separated set of languages to include (default: all in languagelist)")
	cmd.Flags().Float64Var(&pruneRatio, "prune-ratio", 0, "drop n-grams below this fraction of their language's total (default: 5e-7)")
	cmd.Flags().BoolVar(&allowMissingLangs, "allow-missing-langs", false, "skip languages with no plain-text model files instead of failing")
	return cmd
}
