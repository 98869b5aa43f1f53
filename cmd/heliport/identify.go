package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ZJaume/heliport/confidence"
	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/model"
	"github.com/ZJaume/heliport/pipeline"
)

func newIdentifyCmd() *cobra.Command {
	var (
		batchSize        int
		ignoreConfidence bool
		printScores      bool
		printRaw         bool
		relevantLangs    []string
		topK             int
	)

	cmd := &cobra.Command{
		Use:     "identify [input] [output]",
		Aliases: []string{"detect"},
		Short:   "Identify the language of each input line",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return userError("reading heliport.toml: %v", err)
			}

			modelDirFlag, _ := cmd.Flags().GetString("model-dir")
			modelDir := resolveModelDir(modelDirFlag, cfg)
			threads, _ := cmd.Flags().GetInt("threads")
			if !cmd.Flags().Changed("threads") && cfg.Threads != 0 {
				threads = cfg.Threads
			}
			if batchSize == 0 {
				batchSize = cfg.BatchSize
			}
			if batchSize <= 0 {
				batchSize = 64
			}

			m, err := model.Load(modelDir)
			if err != nil {
				return internalError(fmt.Errorf("loading model from %s: %w", modelDir, err))
			}

			var thresholds confidence.Thresholds
			thPath := filepath.Join(modelDir, "confidenceThresholds")
			if _, err := os.Stat(thPath); err == nil {
				thresholds, err = confidence.Load(thPath, false)
				if err != nil {
					return internalError(fmt.Errorf("loading confidence thresholds: %w", err))
				}
			} else {
				printWarning("no confidenceThresholds file found in %s, confidence checks disabled", modelDir)
				ignoreConfidence = true
			}

			var allowed map[lang.Lang]bool
			codes := relevantLangs
			if len(codes) == 0 {
				codes = cfg.RelevantLangs
			}
			if len(codes) > 0 {
				allowed = make(map[lang.Lang]bool, len(codes))
				for _, c := range codes {
					l, ok := lang.Parse(strings.TrimSpace(c))
					if !ok {
						return userError("unknown language code %q in --relevant-langs", c)
					}
					allowed[l] = true
				}
			}

			in, out, err := openStreams(args)
			if err != nil {
				return userError("%v", err)
			}
			defer in.Close()
			defer out.Close()

			p := pipeline.New(m, threads, batchSize)
			w := bufio.NewWriter(out)
			defer w.Flush()

			err = runIdentify(cmd.Context(), p, in, w, identifyOptions{
				Thresholds:       thresholds,
				IgnoreConfidence: ignoreConfidence,
				PrintScores:      printScores,
				PrintRaw:         printRaw,
				TopK:             topK,
				Allowed:          allowed,
			})
			if err != nil {
				if errors.Is(err, syscall.EPIPE) {
					os.Exit(0)
				}
				return internalError(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0, "lines per scoring batch")
	cmd.Flags().BoolVarP(&ignoreConfidence, "ignore-confidence", "c", false, "never downgrade a winner to und")
	cmd.Flags().BoolVarP(&printScores, "print-scores", "s", false, "print the winning language's raw score")
	cmd.Flags().BoolVar(&printRaw, "print-raw", false, "print the winner before confidence thresholding")
	cmd.Flags().StringSliceVarP(&relevantLangs, "relevant-langs", "l", nil, "restrict output to this comma-separated language set")
	cmd.Flags().IntVarP(&topK, "topk", "k", 0, "ranked candidate count; accepted but not used: output is one label per line")
	return cmd
}

type identifyOptions struct {
	Thresholds       confidence.Thresholds
	IgnoreConfidence bool
	PrintScores      bool
	PrintRaw         bool
	TopK             int
	Allowed          map[lang.Lang]bool
}

func runIdentify(ctx context.Context, p *pipeline.Pipeline, in io.Reader, out io.Writer, opts identifyOptions) error {
	lineCh := make(chan string)
	resultCh := p.Run(ctx, lineCh)

	errCh := make(chan error, 1)
	go func() {
		defer close(lineCh)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lineCh <- sc.Text():
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- sc.Err()
	}()

	for r := range resultCh {
		label := r.Result.Label
		if !opts.PrintRaw {
			label = opts.Thresholds.Decide(label, r.Result.Confidence, opts.IgnoreConfidence)
		}
		if opts.Allowed != nil && !opts.Allowed[label] && label != lang.Und && label != lang.Zxx {
			label = lang.Und
		}

		if opts.PrintScores {
			if _, err := fmt.Fprintf(out, "%s\t%.6f\n", label, r.Result.Scores.Get(label)); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(out, label); err != nil {
				return err
			}
		}
	}

	if err := <-errCh; err != nil {
		return err
	}
	return nil
}

func openStreams(args []string) (io.ReadCloser, io.WriteCloser, error) {
	in := io.ReadCloser(os.Stdin)
	out := io.WriteCloser(os.Stdout)

	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		in = f
	}
	if len(args) >= 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return nil, nil, fmt.Errorf("opening output: %w", err)
		}
		out = f
	}
	return in, out, nil
}
