package lang

// MacroTable maps each language to its macrolanguage parent. A language
// with no parent maps to itself.
type MacroTable [NumLangs]Lang

// DefaultMacroTable returns the built-in collapse table for the languages
// that have a distinguished macrolanguage in the closed set (e.g. azj/azb
// both collapse to aze; srp/bos/hrv collapse to hbs).
func DefaultMacroTable() MacroTable {
	var t MacroTable
	for i := range t {
		t[i] = Lang(i)
	}
	set := func(child, parent Lang) { t[child] = parent }

	set(Twi, Aka)
	set(Ayr, Aym)
	set(Azb, Aze)
	set(Azj, Aze)
	set(Dik, Din)
	set(Pes, Fas)
	set(Prs, Fas)
	set(Fuv, Ful)
	set(Bos, Hbs)
	set(Hrv, Hbs)
	set(Srp, Hbs)
	set(Knc, Kau)
	set(Ckb, Kur)
	set(Kmr, Kur)
	set(Ltg, Lav)
	set(Lvs, Lav)
	set(Plt, Mlg)
	set(Khk, Mon)
	set(Npi, Nep)
	set(Ory, Ori)
	set(Gaz, Orm)
	set(Pbt, Pus)
	set(Quy, Que)
	set(Sqi, Als)
	set(Swh, Swa)
	set(Uzn, Uzb)
	set(Ydd, Yid)
	set(Yue, Zho)

	return t
}

// Collapse returns l's macrolanguage, or l itself if it has none.
func (t MacroTable) Collapse(l Lang) Lang {
	if int(l) >= NumLangs {
		return l
	}
	return t[l]
}

// Candidate is a single ranked language/score pair, used by top-k reporting
// and by macrolanguage collapse of a ranked list.
type Candidate struct {
	Lang  Lang
	Score float64
}

// CollapseTopK replaces each candidate's language with its macrolanguage
// parent, keeping only the first (best-ranked) occurrence of each resulting
// parent. The input must already be ranked best-first; the result is never
// longer than the input, and stays ranked best-first.
func (t MacroTable) CollapseTopK(cands []Candidate) []Candidate {
	seen := make(map[Lang]bool, len(cands))
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		parent := t.Collapse(c.Lang)
		if seen[parent] {
			continue
		}
		seen[parent] = true
		out = append(out, Candidate{Lang: parent, Score: c.Score})
	}
	return out
}

// cjkLangs is the fixed set of languages whose script is CJK, used by the
// scoring engine's density-based penalty. Flattened from the per-script
// enumeration in the source registry (jpn, kor, and the Han-script variants
// of Chinese) into the single ISO 639-3 codes this registry tracks.
var cjkLangs = map[Lang]bool{
	Jpn: true,
	Kor: true,
	Cmn: true,
	Yue: true,
	Zho: true,
}

// IsCJK reports whether l is written in a CJK script.
func IsCJK(l Lang) bool {
	return cjkLangs[l]
}
