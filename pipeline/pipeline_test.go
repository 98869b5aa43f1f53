package pipeline

import (
	"context"
	"testing"

	"github.com/ZJaume/heliport/lang"
	"github.com/ZJaume/heliport/model"
)

func tinyModel() *model.Model {
	langs := []lang.Lang{lang.Eng, lang.Fra}
	var submodels [7]*model.Submodel
	for o := model.Order(0); int(o) < 7; o++ {
		submodels[o] = model.NewSubmodel(o)
	}
	var v lang.Scores
	v.Fill(model.MaxPenalty)
	v.Set(lang.Eng, 0.1)
	submodels[model.Gram1].Set("a", v)
	return model.New(submodels, lang.Scores{}, lang.DefaultMacroTable(), langs)
}

func TestRunBatchPreservesOrderAcrossThreadCounts(t *testing.T) {
	lines := []string{"a a a", "", "a a", "a", ""}
	for _, threads := range []int{0, 1, 4} {
		p := New(tinyModel(), threads, 2)
		out, err := p.RunBatch(context.Background(), lines)
		if err != nil {
			t.Fatalf("threads=%d: RunBatch: %v", threads, err)
		}
		if len(out) != len(lines) {
			t.Fatalf("threads=%d: got %d results, want %d", threads, len(out), len(lines))
		}
		if out[1].Label != lang.Zxx || out[4].Label != lang.Zxx {
			t.Fatalf("threads=%d: empty lines should score Zxx, got %v / %v", threads, out[1].Label, out[4].Label)
		}
	}
}

func TestRunStreamsInOrder(t *testing.T) {
	p := New(tinyModel(), 4, 2)
	in := make(chan string)
	ctx := context.Background()
	out := p.Run(ctx, in)

	go func() {
		defer close(in)
		for _, l := range []string{"a", "a a", "", "a a a"} {
			in <- l
		}
	}()

	var got []LineResult
	for r := range out {
		got = append(got, r)
	}
	if len(got) != 4 {
		t.Fatalf("got %d results, want 4", len(got))
	}
	for i, r := range got {
		if r.Index != i {
			t.Fatalf("result %d has Index %d, order not preserved", i, r.Index)
		}
	}
}
