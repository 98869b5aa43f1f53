// Package score implements the per-line HeLI-OTS scoring loop: tokenize,
// back off across n-gram orders, accumulate penalties, and pick a winner.
package score

import (
	"sort"

	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/model"
	"github.com/ZJaume/heliport/ngram"
	"github.com/ZJaume/heliport/preprocess"
)

// Result is the outcome of identifying a single line.
type Result struct {
	Scores     lang.Scores
	Label      lang.Lang
	Confidence float64
	TopK       []lang.Candidate
}

// Engine holds the scratch accumulators a single goroutine reuses across
// every call to Identify/IdentifyTopK. An Engine must never be shared
// across goroutines; callers running concurrently should keep one Engine
// per worker.
type Engine struct {
	m *model.Model

	tokenAcc lang.Scores
	total    lang.Scores
}

// NewEngine allocates the scratch state once, bound to model m.
func NewEngine(m *model.Model) *Engine {
	return &Engine{m: m}
}

// Identify scores text and returns the single best-guess language.
func (e *Engine) Identify(text string) Result {
	return e.identify(text, 0)
}

// IdentifyTopK scores text and additionally returns up to k ranked
// candidates, after macrolanguage collapse.
func (e *Engine) IdentifyTopK(text string, k int) Result {
	return e.identify(text, k)
}

func (e *Engine) identify(text string, k int) Result {
	pre := preprocess.Normalize(text)
	tokens := ngram.Tokens(pre.Text)
	if len(tokens) == 0 {
		return Result{Label: lang.Zxx}
	}

	e.total.Reset()
	scoredTokens := 0

	for _, tok := range tokens {
		if e.scoreToken(tok) {
			e.total.Add(&e.tokenAcc)
			scoredTokens++
		}
	}

	if scoredTokens == 0 {
		return Result{Label: lang.Zxx}
	}
	e.total.Scale(float64(scoredTokens))

	if pre.CJKDensity > 0.5 {
		penalty := e.m.MaxPenaltyFor(model.Word) + 1
		for i := 0; i < lang.NumLangs; i++ {
			l := lang.Lang(i)
			if !lang.IsCJK(l) {
				e.total.Set(l, penalty)
			}
		}
	}

	winner, winnerScore := e.total.Min()
	conf := e.confidence(winner, winnerScore)

	res := Result{Scores: e.total, Label: winner, Confidence: conf}
	if k > 0 {
		res.TopK = e.m.Macro().CollapseTopK(e.rank(k))
	}
	return res
}

// scoreToken fills e.tokenAcc with the per-language penalty for a single
// token, trying the whole-word submodel first, then character orders 6
// down to 1, stopping at the first order with at least one hit. It returns
// false if the token produced no hit at any order.
func (e *Engine) scoreToken(tok string) bool {
	if v, ok := e.m.Lookup(model.Word, tok); ok {
		e.tokenAcc = v
		return true
	}

	for order := model.Gram6; order >= model.Gram1; order-- {
		e.tokenAcc.Reset()
		hits := 0
		ngram.CharGrams(tok, int(order), func(g string) bool {
			v, ok := e.m.Lookup(order, g)
			if !ok {
				return true
			}
			e.tokenAcc.Add(&v)
			hits++
			return true
		})
		if hits > 0 {
			e.tokenAcc.Scale(float64(hits))
			return true
		}
	}
	return false
}

// confidence is the gap between the winner's score and the best score
// among languages that do not share the winner's macrolanguage.
func (e *Engine) confidence(winner lang.Lang, winnerScore float64) float64 {
	winnerMacro := e.m.Macro().Collapse(winner)
	second := e.m.MaxPenaltyFor(model.Word) * 2
	for i := 0; i < lang.NumLangs; i++ {
		l := lang.Lang(i)
		if e.m.Macro().Collapse(l) == winnerMacro {
			continue
		}
		if s := e.total.Get(l); s < second {
			second = s
		}
	}
	return second - winnerScore
}

func (e *Engine) rank(k int) []lang.Candidate {
	all := make([]lang.Candidate, lang.NumLangs)
	for i := 0; i < lang.NumLangs; i++ {
		all[i] = lang.Candidate{Lang: lang.Lang(i), Score: e.total.Get(lang.Lang(i))}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score < all[j].Score })
	if k < len(all) {
		all = all[:k]
	}
	return all
}
