// Package model loads and saves the binary language-model image: seven
// per-order submodels, a confidence threshold table, and a macrolanguage
// table, all addressed by the closed lang.Lang registry.
package model

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ZJaume/heliport/lang"
)

// Order identifies one of the seven submodels: the whole-word model, and
// the six character-n-gram orders.
type Order uint8

const (
	Word Order = iota
	Gram1
	Gram2
	Gram3
	Gram4
	Gram5
	Gram6

	numOrders = 7
)

func (o Order) String() string {
	if o == Word {
		return "word"
	}
	return fmt.Sprintf("%dgram", o)
}

// filename returns the on-disk model file name for this order.
func (o Order) filename() string {
	if o == Word {
		return "word.model"
	}
	return fmt.Sprintf("%dgram.model", o)
}

// MaxPenalty is the default penalty assigned to a language that was never
// observed for a given key, used as a conservative fallback before a real
// per-order maximum is known.
const MaxPenalty = 7.0

// epsilon nudges the unseen-key default strictly worse than any observed
// penalty for that order, per the submodel invariant that every key has at
// least one language strictly below the order's maximum.
const epsilon = 1e-6

// Submodel holds the dense per-language penalty vector for every key
// observed at one n-gram order.
type Submodel struct {
	order   Order
	entries map[string]lang.Scores
	max     float64
}

// NewSubmodel creates an empty submodel for the given order.
func NewSubmodel(order Order) *Submodel {
	return &Submodel{order: order, entries: make(map[string]lang.Scores)}
}

// Lookup returns the penalty vector for key, and whether it was found.
func (s *Submodel) Lookup(key string) (lang.Scores, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// SetMax overrides the tracked per-order maximum directly, used by callers
// (such as the binarizer) that already computed the true maximum while
// building the submodel's entries.
func (s *Submodel) SetMax(max float64) {
	s.max = max
}

// MaxPenalty returns the highest penalty observed for this order, used as
// the default for languages that never appear for a given key.
func (s *Submodel) MaxPenalty() float64 {
	if s.max == 0 {
		return MaxPenalty
	}
	return s.max
}

// Set stores the dense vector for key, tracking the running per-order max.
// Every value in v below twice MaxPenalty counts toward the max, fill values
// included.
func (s *Submodel) Set(key string, v lang.Scores) {
	s.entries[key] = v
	for _, p := range v {
		if p > s.max && p < MaxPenalty*2 {
			s.max = p
		}
	}
}

// Len reports how many keys this submodel holds.
func (s *Submodel) Len() int { return len(s.entries) }

// Model is an immutable, loaded language-model image: seven submodels plus
// the confidence thresholds and the set of languages it was built for.
// Once Load returns, a *Model is never mutated and can be shared by
// pointer across any number of goroutines without synchronization.
type Model struct {
	submodels  [numOrders]*Submodel
	thresholds lang.Scores
	macro      lang.MacroTable
	langs      []lang.Lang
}

// New assembles a Model from already-built submodels, used by the
// binarizer after it finishes building every order.
func New(submodels [numOrders]*Submodel, thresholds lang.Scores, macro lang.MacroTable, langs []lang.Lang) *Model {
	return &Model{submodels: submodels, thresholds: thresholds, macro: macro, langs: langs}
}

// Lookup finds key in the submodel for order o.
func (m *Model) Lookup(o Order, key string) (lang.Scores, bool) {
	return m.submodels[o].Lookup(key)
}

// MaxPenaltyFor returns order o's maximum observed penalty.
func (m *Model) MaxPenaltyFor(o Order) float64 {
	return m.submodels[o].MaxPenalty()
}

// Thresholds returns the per-language confidence threshold vector.
func (m *Model) Thresholds() lang.Scores { return m.thresholds }

// Macro returns the macrolanguage collapse table bundled with this model.
func (m *Model) Macro() lang.MacroTable { return m.macro }

// Langs returns the languages this model image was built for, in on-disk
// order.
func (m *Model) Langs() []lang.Lang { return m.langs }

// NumLangs reports how many languages this model image covers.
func (m *Model) NumLangs() int { return len(m.langs) }

const (
	magic         = "HELI"
	formatVersion = uint32(1)
)

var (
	ErrBadMagic = errors.New("model: not a heliport model directory (bad magic)")
	ErrVersion  = errors.New("model: incompatible model format version")
)

type header struct {
	Magic    [4]byte
	Version  uint32
	LangNum  uint32
	Reserved uint32
}

// Load reads a complete model image from dir.
func Load(dir string) (*Model, error) {
	hdr, err := readHeader(filepath.Join(dir, "heliport.header"))
	if err != nil {
		return nil, err
	}

	langs, err := readLanguageList(filepath.Join(dir, "languagelist"))
	if err != nil {
		return nil, fmt.Errorf("model: reading languagelist: %w", err)
	}
	if uint32(len(langs)) != hdr.LangNum {
		return nil, fmt.Errorf("model: header declares %d languages, languagelist has %d", hdr.LangNum, len(langs))
	}

	var thresholds lang.Scores
	thresholdPath := filepath.Join(dir, "confidenceThresholds")
	if _, err := os.Stat(thresholdPath); err == nil {
		thresholds, err = readThresholds(thresholdPath)
		if err != nil {
			return nil, fmt.Errorf("model: reading confidenceThresholds: %w", err)
		}
	}

	var submodels [numOrders]*Submodel
	for o := Order(0); o < numOrders; o++ {
		sm, err := readSubmodel(filepath.Join(dir, o.filename()), o)
		if err != nil {
			return nil, fmt.Errorf("model: reading %s: %w", o.filename(), err)
		}
		submodels[o] = sm
	}

	return &Model{
		submodels:  submodels,
		thresholds: thresholds,
		macro:      lang.DefaultMacroTable(),
		langs:      langs,
	}, nil
}

func readHeader(path string) (header, error) {
	f, err := os.Open(path)
	if err != nil {
		return header{}, fmt.Errorf("model: opening header: %w", err)
	}
	defer f.Close()

	var h header
	if err := binary.Read(f, binary.LittleEndian, &h); err != nil {
		return header{}, fmt.Errorf("model: reading header: %w", err)
	}
	if string(h.Magic[:]) != magic {
		return header{}, ErrBadMagic
	}
	if h.Version != formatVersion {
		return header{}, fmt.Errorf("%w: got %d, want %d", ErrVersion, h.Version, formatVersion)
	}
	return h, nil
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

func readThresholds(path string) (lang.Scores, error) {
	f, err := os.Open(path)
	if err != nil {
		return lang.Scores{}, err
	}
	defer f.Close()

	var t lang.Scores
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		var code string
		var value float64
		if _, err := fmt.Sscanf(line, "%s\t%g", &code, &value); err != nil {
			return lang.Scores{}, fmt.Errorf("line %d: %w", lineNum, err)
		}
		l, ok := lang.Parse(code)
		if !ok {
			return lang.Scores{}, fmt.Errorf("line %d: unknown language code %q", lineNum, code)
		}
		t.Set(l, value)
	}
	return t, sc.Err()
}

// langPenalty is the sparse on-disk record for one language's penalty at a
// given key; only languages that were actually observed get an entry.
type langPenalty struct {
	Lang lang.Lang
	P    float64
}

func readSubmodel(path string, order Order) (*Submodel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string][]langPenalty
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding msgpack payload: %w", err)
	}

	sm := NewSubmodel(order)
	maxSeen := 0.0
	for _, entries := range raw {
		for _, e := range entries {
			if e.P > maxSeen {
				maxSeen = e.P
			}
		}
	}
	fallback := maxSeen + epsilon
	for key, entries := range raw {
		var v lang.Scores
		v.Fill(fallback)
		for _, e := range entries {
			v.Set(e.Lang, e.P)
		}
		sm.entries[key] = v
	}
	sm.max = maxSeen
	return sm, nil
}

// Save writes a complete model image to dir, creating it if necessary.
// Map keys are always sorted before encoding so two runs over the same
// in-memory model produce byte-identical output.
func (m *Model) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeHeader(filepath.Join(dir, "heliport.header"), uint32(len(m.langs))); err != nil {
		return err
	}
	if err := writeLanguageList(filepath.Join(dir, "languagelist"), m.langs); err != nil {
		return err
	}
	if err := writeThresholds(filepath.Join(dir, "confidenceThresholds"), m.langs, m.thresholds); err != nil {
		return err
	}
	for o := Order(0); o < numOrders; o++ {
		if err := writeSubmodel(filepath.Join(dir, o.filename()), m.submodels[o], m.langs); err != nil {
			return fmt.Errorf("writing %s: %w", o.filename(), err)
		}
	}
	return nil
}

func writeHeader(path string, langNum uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := header{Version: formatVersion, LangNum: langNum}
	copy(h.Magic[:], magic)
	return binary.Write(f, binary.LittleEndian, &h)
}

func writeLanguageList(path string, langs []lang.Lang) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range langs {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeThresholds(path string, langs []lang.Lang, t lang.Scores) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range langs {
		if _, err := fmt.Fprintf(w, "%s\t%g\n", l.String(), t.Get(l)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeSubmodel(path string, sm *Submodel, langs []lang.Lang) error {
	keys := make([]string, 0, len(sm.entries))
	for k := range sm.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	raw := make(map[string][]langPenalty, len(keys))
	for _, k := range keys {
		v := sm.entries[k]
		var entries []langPenalty
		for _, l := range langs {
			p := v.Get(l)
			if p <= sm.MaxPenalty() {
				entries = append(entries, langPenalty{Lang: l, P: p})
			}
		}
		raw[k] = entries
	}

	data, err := msgpack.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
