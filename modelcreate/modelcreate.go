// Package modelcreate builds the plain-text per-language n-gram count
// files that binarize later turns into a binary model.
package modelcreate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/model"
	"github.com/ZJaume/heliport/ngram"
	"github.com/ZJaume/heliport/preprocess"
)

// Options configures a single count run over one language's corpus.
type Options struct {
	InputPath string // one cleaned sentence per line
	OutputDir string
	LangCode  lang.Lang
	MinCount  int // default 1
}

// Count tokenizes opts.InputPath and writes one <lang>.<order>.model file
// per order (word plus the six character-n-gram orders) into
// opts.OutputDir, each sorted by descending count.
func Count(opts Options) error {
	if opts.MinCount <= 0 {
		opts.MinCount = 1
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return err
	}

	lines, err := readLines(opts.InputPath)
	if err != nil {
		return fmt.Errorf("modelcreate: %w", err)
	}

	g := new(errgroup.Group)
	for o := model.Order(0); int(o) < 7; o++ {
		o := o
		g.Go(func() error {
			counts := countOrder(lines, o)
			return writeModel(filepath.Join(opts.OutputDir, fmt.Sprintf("%s.%s.model", opts.LangCode, o)), counts, opts.MinCount)
		})
	}
	return g.Wait()
}

func countOrder(lines []string, o model.Order) map[string]int {
	counts := make(map[string]int)
	for _, line := range lines {
		pre := preprocess.Normalize(line)
		for _, tok := range ngram.Tokens(pre.Text) {
			if o == model.Word {
				counts[tok]++
				continue
			}
			ngram.CharGrams(tok, int(o), func(g string) bool {
				counts[g]++
				return true
			})
		}
	}
	return counts
}

type keyCount struct {
	key   string
	count int
}

func writeModel(path string, counts map[string]int, minCount int) error {
	entries := make([]keyCount, 0, len(counts))
	total := 0
	for k, c := range counts {
		total += c
		if c < minCount {
			continue
		}
		entries = append(entries, keyCount{key: k, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(w, total); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", e.count, e.key); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
