package binarize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/model"
)

func writePlainModel(t *testing.T, dir string, l lang.Lang, o model.Order, total string, lines []string) {
	path := filepath.Join(dir, plainFilename(l, o))
	content := total + "\n"
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBinarizeProducesLookupableModel(t *testing.T) {
	dir := t.TempDir()
	for o := model.Order(0); int(o) < 7; o++ {
		writePlainModel(t, dir, lang.Eng, o, "100", []string{"50\tthe", "30\tof"})
		writePlainModel(t, dir, lang.Fra, o, "100", []string{"40\tle", "20\tde"})
	}

	m, err := Binarize(Options{
		ModelDir:      dir,
		RelevantLangs: []lang.Lang{lang.Eng, lang.Fra},
	})
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}

	v, ok := m.Lookup(model.Word, "the")
	if !ok {
		t.Fatal("expected \"the\" in the word submodel")
	}
	if v.Get(lang.Eng) >= v.Get(lang.Fra) {
		t.Fatalf("eng penalty %v should be lower than fra penalty %v for an eng-only key", v.Get(lang.Eng), v.Get(lang.Fra))
	}
}

func TestBinarizePrunesLowFrequencyTail(t *testing.T) {
	dir := t.TempDir()
	for o := model.Order(0); int(o) < 7; o++ {
		writePlainModel(t, dir, lang.Eng, o, "10000000", []string{"9999990\tcommon", "2\trare"})
	}

	m, err := Binarize(Options{
		ModelDir:      dir,
		RelevantLangs: []lang.Lang{lang.Eng},
		PruneRatio:    0.0000005,
	})
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}

	if _, ok := m.Lookup(model.Word, "rare"); ok {
		t.Fatal("\"rare\" should have been pruned: its ratio is below PruneRatio")
	}
	if _, ok := m.Lookup(model.Word, "common"); !ok {
		t.Fatal("\"common\" should survive pruning")
	}
}

func TestBinarizeMissingLangFailsByDefault(t *testing.T) {
	dir := t.TempDir()
	_, err := Binarize(Options{
		ModelDir:      dir,
		RelevantLangs: []lang.Lang{lang.Eng},
	})
	if err == nil {
		t.Fatal("expected an error for a missing language's model files")
	}
}

func TestBinarizeAllowMissingLangsSkips(t *testing.T) {
	dir := t.TempDir()
	for o := model.Order(0); int(o) < 7; o++ {
		writePlainModel(t, dir, lang.Eng, o, "10", []string{"5\tthe"})
	}
	_, err := Binarize(Options{
		ModelDir:          dir,
		RelevantLangs:     []lang.Lang{lang.Eng, lang.Fra},
		AllowMissingLangs: true,
	})
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}
}
