// Package confidence loads per-language minimum-confidence thresholds and
// decides whether a scoring winner should be downgraded to undetermined.
package confidence

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ZJaume/heliport/lang"
)

// Thresholds holds one minimum confidence value per language.
type Thresholds lang.Scores

// Load parses a tab-separated "<code>\t<value>" confidence table. Lines
// starting with '#' and blank lines are skipped. In strict mode, any
// language in the closed set missing from the file is a fatal error;
// otherwise a missing language defaults to a threshold of 0 (always
// accepted).
func Load(path string, strict bool) (Thresholds, error) {
	f, err := os.Open(path)
	if err != nil {
		return Thresholds{}, err
	}
	defer f.Close()

	var t Thresholds
	seen := make(map[lang.Lang]bool, lang.NumLangs)

	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return Thresholds{}, fmt.Errorf("confidence: line %d: expected \"<code>\\t<value>\", got %q", lineNum, line)
		}
		l, ok := lang.Parse(fields[0])
		if !ok {
			return Thresholds{}, fmt.Errorf("confidence: line %d: unknown language code %q", lineNum, fields[0])
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Thresholds{}, fmt.Errorf("confidence: line %d: %w", lineNum, err)
		}
		t[l] = v
		seen[l] = true
	}
	if err := sc.Err(); err != nil {
		return Thresholds{}, err
	}

	t[lang.Und] = 0
	t[lang.Zxx] = 0

	if strict {
		for i := 0; i < lang.NumLangs; i++ {
			l := lang.Lang(i)
			if l == lang.Und || l == lang.Zxx {
				continue
			}
			if !seen[l] {
				return Thresholds{}, fmt.Errorf("confidence: strict mode: missing threshold for %q", l)
			}
		}
	}
	return t, nil
}

// Decide applies the thresholds to a scoring winner. zxx is always passed
// through unchanged: empty-safety is handled upstream by the scoring
// engine, never here. If ignore is set, winner is always accepted.
func (t Thresholds) Decide(winner lang.Lang, conf float64, ignore bool) lang.Lang {
	if winner == lang.Zxx {
		return lang.Zxx
	}
	if ignore {
		return winner
	}
	if conf >= t[winner] {
		return winner
	}
	return lang.Und
}
