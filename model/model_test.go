package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZJaume/heliport/lang"
)

func buildTinyModel() *Model {
	langs := []lang.Lang{lang.Eng, lang.Fra}

	var submodels [numOrders]*Submodel
	for o := Order(0); o < numOrders; o++ {
		sm := NewSubmodel(o)
		var v lang.Scores
		v.Fill(MaxPenalty)
		v.Set(lang.Eng, 0.5)
		v.Set(lang.Fra, 3.0)
		sm.Set("the", v)
		submodels[o] = sm
	}

	var thresholds lang.Scores
	thresholds.Set(lang.Eng, 0.1)
	thresholds.Set(lang.Fra, 0.1)

	return New(submodels, thresholds, lang.DefaultMacroTable(), langs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := buildTinyModel()
	dir := t.TempDir()
	if err := m.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.NumLangs() != 2 {
		t.Fatalf("NumLangs = %d, want 2", loaded.NumLangs())
	}

	v, ok := loaded.Lookup(Word, "the")
	if !ok {
		t.Fatal("expected \"the\" to be present in the word submodel")
	}
	if v.Get(lang.Eng) != 0.5 {
		t.Fatalf("penalty[eng] = %v, want 0.5", v.Get(lang.Eng))
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	m := buildTinyModel()
	dir1 := filepath.Join(t.TempDir(), "a")
	dir2 := filepath.Join(t.TempDir(), "b")

	if err := m.Save(dir1); err != nil {
		t.Fatalf("Save dir1: %v", err)
	}
	if err := m.Save(dir2); err != nil {
		t.Fatalf("Save dir2: %v", err)
	}

	for _, name := range []string{"heliport.header", "languagelist", "word.model", "1gram.model"} {
		b1, err := os.ReadFile(filepath.Join(dir1, name))
		if err != nil {
			t.Fatalf("reading %s from dir1: %v", name, err)
		}
		b2, err := os.ReadFile(filepath.Join(dir2, name))
		if err != nil {
			t.Fatalf("reading %s from dir2: %v", name, err)
		}
		if string(b1) != string(b2) {
			t.Fatalf("%s differs between two saves of the same model", name)
		}
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "heliport.header"), []byte("NOTAHELIPORTHEADER"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected Load to fail on a corrupt header")
	}
}

func TestUnseenKeyAbsentAndMaxCoversSeen(t *testing.T) {
	sm := NewSubmodel(Gram3)
	var v lang.Scores
	v.Fill(2.0)
	v.Set(lang.Eng, 0.1)
	sm.Set("abc", v)

	looked, ok := sm.Lookup("xyz")
	if ok {
		t.Fatal("unseen key should not be present in the submodel map at all")
	}
	_ = looked
	if sm.MaxPenalty() < 0.1 {
		t.Fatalf("MaxPenalty = %v, should be at least the highest non-fill value seen", sm.MaxPenalty())
	}
}
