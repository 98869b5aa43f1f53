package lang

import "testing"

func TestRegistryClosed(t *testing.T) {
	if NumLangs != len(names) {
		t.Fatalf("NumLangs=%d but names has %d entries", NumLangs, len(names))
	}
	seen := make(map[string]bool, NumLangs)
	for i, n := range names {
		if n == "" {
			t.Fatalf("empty name at index %d", i)
		}
		if seen[n] {
			t.Fatalf("duplicate code %q", n)
		}
		seen[n] = true
	}
}

func TestParseRoundTrip(t *testing.T) {
	for i := 0; i < NumLangs; i++ {
		l := Lang(i)
		parsed, ok := Parse(l.String())
		if !ok {
			t.Fatalf("Parse(%q) not found", l.String())
		}
		if parsed != l {
			t.Fatalf("Parse(%q) = %v, want %v", l.String(), parsed, l)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, ok := Parse("xx-not-a-lang"); ok {
		t.Fatal("expected Parse to fail for an unknown code")
	}
}

func TestSentinelsPresent(t *testing.T) {
	if Und.String() != "und" {
		t.Fatalf("Und.String() = %q", Und.String())
	}
	if Zxx.String() != "zxx" {
		t.Fatalf("Zxx.String() = %q", Zxx.String())
	}
}

func TestMacroTableCollapseStable(t *testing.T) {
	table := DefaultMacroTable()
	if got := table.Collapse(Azb); got != Aze {
		t.Fatalf("Collapse(Azb) = %v, want Aze", got)
	}
	if got := table.Collapse(Eng); got != Eng {
		t.Fatalf("Collapse(Eng) = %v, want Eng (no parent)", got)
	}
}

func TestCollapseTopKShrinksAndKeepsBestRank(t *testing.T) {
	table := DefaultMacroTable()
	cands := []Candidate{
		{Lang: Azb, Score: 1.0},
		{Lang: Azj, Score: 1.2},
		{Lang: Eng, Score: 1.5},
	}
	out := table.CollapseTopK(cands)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 (Azb/Azj both collapse to Aze)", len(out))
	}
	if out[0].Lang != Aze || out[0].Score != 1.0 {
		t.Fatalf("out[0] = %+v, want Aze at score 1.0 (best rank kept)", out[0])
	}
	if out[1].Lang != Eng {
		t.Fatalf("out[1] = %+v, want Eng", out[1])
	}
}

func TestScoresMin(t *testing.T) {
	var s Scores
	s.Fill(5.0)
	s.Set(Fra, 1.0)
	s.Set(Deu, 1.0)
	best, score := s.Min()
	if score != 1.0 {
		t.Fatalf("Min score = %v, want 1.0", score)
	}
	if best != Deu {
		t.Fatalf("Min lang = %v, want Deu (lower index wins tie)", best)
	}
}
