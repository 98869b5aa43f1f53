package lang

import "fmt"

// Scores holds one float64 penalty per language in the closed set, stored as
// a fixed array rather than a map so the scoring hot loop can add into it
// without a single hash lookup.
type Scores [NumLangs]float64

// Get returns the score for l.
func (s *Scores) Get(l Lang) float64 { return s[l] }

// Set overwrites the score for l.
func (s *Scores) Set(l Lang, v float64) { s[l] = v }

// Add accumulates other into s, language by language.
func (s *Scores) Add(other *Scores) {
	for i := range s {
		s[i] += other[i]
	}
}

// Scale divides every score by y.
func (s *Scores) Scale(y float64) {
	if y == 0 {
		return
	}
	for i := range s {
		s[i] /= y
	}
}

// Reset zeroes every score.
func (s *Scores) Reset() {
	*s = Scores{}
}

// Fill sets every language to v, used to seed an accumulator with a default
// "unseen key" penalty before sparse hits are merged in.
func (s *Scores) Fill(v float64) {
	for i := range s {
		s[i] = v
	}
}

// Min returns the language with the lowest score, ties broken by the lowest
// Lang index (the registry's declared order, which is alphabetical by ISO
// 639-3 code).
func (s *Scores) Min() (best Lang, score float64) {
	score = s[0]
	best = Lang(0)
	for i := 1; i < NumLangs; i++ {
		if s[i] < score {
			score = s[i]
			best = Lang(i)
		}
	}
	return
}

func (s *Scores) String() string {
	return fmt.Sprintf("Scores[0]=%v..Scores[%d]=%v", s[0], NumLangs-1, s[NumLangs-1])
}
