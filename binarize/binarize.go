// Package binarize turns the plain-text, per-language n-gram count files
// produced by modelcreate into a single binary model.Model image.
package binarize

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"fortio.org/safecast"

	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/model"
)

// defaultPruneRatio matches the upstream HeLI-OTS model's MAX_USED cutoff:
// any n-gram whose frequency drops below this fraction of its language's
// total is dropped, along with every less-frequent line after it in that
// file.
const defaultPruneRatio = 0.0000005

const epsilon = 1e-6

// Options configures a single binarization run.
type Options struct {
	ModelDir          string
	OutputDir         string
	RelevantLangs     []lang.Lang
	PruneRatio        float64
	AllowMissingLangs bool
}

// Binarize reads plain-text <lang>.<order>.model files from opts.ModelDir
// and produces a complete model.Model, also writing it to opts.OutputDir
// if set.
func Binarize(opts Options) (*model.Model, error) {
	if opts.PruneRatio == 0 {
		opts.PruneRatio = defaultPruneRatio
	}

	langs := opts.RelevantLangs
	if langs == nil {
		var err error
		langs, err = readLanguageList(filepath.Join(opts.ModelDir, "languagelist"))
		if err != nil {
			return nil, fmt.Errorf("binarize: %w", err)
		}
	}

	var submodels [7]*model.Submodel
	g := new(errgroup.Group)
	for o := model.Order(0); int(o) < 7; o++ {
		o := o
		g.Go(func() error {
			sm, err := buildSubmodel(opts, o, langs)
			if err != nil {
				return err
			}
			submodels[o] = sm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var thresholds lang.Scores
	m := model.New(submodels, thresholds, lang.DefaultMacroTable(), langs)

	if opts.OutputDir != "" {
		if err := m.Save(opts.OutputDir); err != nil {
			return nil, fmt.Errorf("binarize: saving output: %w", err)
		}
	}
	return m, nil
}

func buildSubmodel(opts Options, o model.Order, langs []lang.Lang) (*model.Submodel, error) {
	sm := model.NewSubmodel(o)
	perLangPenalties := make(map[string]map[lang.Lang]float64)
	maxSeen := 0.0

	for _, l := range langs {
		path := filepath.Join(opts.ModelDir, plainFilename(l, o))
		counts, total, err := readPlainModel(path)
		if err != nil {
			if os.IsNotExist(err) && opts.AllowMissingLangs {
				continue
			}
			return nil, fmt.Errorf("binarize: reading %s: %w", path, err)
		}
		if total == 0 {
			continue
		}

		for _, kc := range counts {
			ratio := kc.count / total
			if ratio < opts.PruneRatio {
				// Every subsequent (lower-frequency) line in this file is
				// pruned too, since counts is sorted descending.
				break
			}
			penalty := -math.Log10(ratio)
			if penalty > maxSeen {
				maxSeen = penalty
			}
			if perLangPenalties[kc.key] == nil {
				perLangPenalties[kc.key] = make(map[lang.Lang]float64)
			}
			perLangPenalties[kc.key][l] = penalty
		}
	}

	fallback := maxSeen + epsilon
	for key, byLang := range perLangPenalties {
		var v lang.Scores
		v.Fill(fallback)
		for l, p := range byLang {
			v.Set(l, p)
		}
		sm.Set(key, v)
	}
	sm.SetMax(maxSeen)
	return sm, nil
}

func plainFilename(l lang.Lang, o model.Order) string {
	return fmt.Sprintf("%s.%s.model", l.String(), o.String())
}

type keyCount struct {
	key   string
	count float64
}

// readPlainModel reads a "<count>\t<ngram>" file: a header line giving the
// language's total count for this order, followed by count/ngram pairs
// sorted by descending count.
func readPlainModel(path string) (counts []keyCount, total float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, 0, fmt.Errorf("empty model file")
	}
	rawTotal, err := strconv.ParseUint(sc.Text(), 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("bad total line %q: %w", sc.Text(), err)
	}
	total, err = safecast.Convert[float64](rawTotal)
	if err != nil {
		return nil, 0, fmt.Errorf("total overflow: %w", err)
	}

	lineNum := 1
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		var countStr, key string
		if _, err := fmt.Sscanf(line, "%s\t%s", &countStr, &key); err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rawCount, err := strconv.ParseUint(countStr, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: bad count %q: %w", lineNum, countStr, err)
		}
		count, err := safecast.Convert[float64](rawCount)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: count overflow: %w", lineNum, err)
		}
		counts = append(counts, keyCount{key: key, count: count})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}

	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	return counts, total, nil
}

func readLanguageList(path string) ([]lang.Lang, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []lang.Lang
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		l, ok := lang.Parse(line)
		if !ok {
			return nil, fmt.Errorf("unknown language code %q", line)
		}
		out = append(out, l)
	}
	return out, sc.Err()
}
