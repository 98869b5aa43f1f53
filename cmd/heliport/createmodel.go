package main

import (
	"github.com/spf13/cobra"

	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/modelcreate"
)

func newCreateModelCmd() *cobra.Command {
	var (
		langCode string
		minCount int
	)

	cmd := &cobra.Command{
		Use:   "create-model <input-file> <output-dir>",
		Short: "Count n-grams in a single-language corpus into plain-text model files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if langCode == "" {
				return userError("--lang is required")
			}
			l, ok := lang.Parse(langCode)
			if !ok {
				return userError("unknown language code %q", langCode)
			}

			err := modelcreate.Count(modelcreate.Options{
				InputPath: args[0],
				OutputDir: args[1],
				LangCode:  l,
				MinCount:  minCount,
			})
			if err != nil {
				return internalError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&langCode, "lang", "", "ISO 639-3 code of the corpus's language (required)")
	cmd.Flags().IntVar(&minCount, "min-count", 1, "drop n-grams seen fewer than this many times")
	return cmd
}
