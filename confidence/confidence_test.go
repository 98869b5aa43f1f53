package confidence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZJaume/heliport/lang"
)

func writeTable(t *testing.T, contents string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "confidenceThresholds")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesTable(t *testing.T) {
	path := writeTable(t, "eng\t0.5\nfra\t0.25\n# a comment\n\n")
	th, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th[lang.Eng] != 0.5 {
		t.Fatalf("eng threshold = %v, want 0.5", th[lang.Eng])
	}
	if th[lang.Fra] != 0.25 {
		t.Fatalf("fra threshold = %v, want 0.25", th[lang.Fra])
	}
}

func TestLoadStrictModeRequiresEveryLanguage(t *testing.T) {
	path := writeTable(t, "eng\t0.5\n")
	if _, err := Load(path, true); err == nil {
		t.Fatal("expected strict mode to fail on a partial table")
	}
}

func TestDecideAboveThreshold(t *testing.T) {
	var t0 Thresholds
	t0[lang.Eng] = 0.3
	if got := t0.Decide(lang.Eng, 0.5, false); got != lang.Eng {
		t.Fatalf("Decide = %v, want Eng", got)
	}
}

func TestDecideBelowThresholdDowngradesToUnd(t *testing.T) {
	var t0 Thresholds
	t0[lang.Eng] = 0.9
	if got := t0.Decide(lang.Eng, 0.1, false); got != lang.Und {
		t.Fatalf("Decide = %v, want Und", got)
	}
}

func TestDecideIgnoreBypassesThreshold(t *testing.T) {
	var t0 Thresholds
	t0[lang.Eng] = 0.9
	if got := t0.Decide(lang.Eng, 0.1, true); got != lang.Eng {
		t.Fatalf("Decide = %v, want Eng when ignoring confidence", got)
	}
}

func TestDecideZxxPassesThrough(t *testing.T) {
	var t0 Thresholds
	if got := t0.Decide(lang.Zxx, 0, false); got != lang.Zxx {
		t.Fatalf("Decide = %v, want Zxx unchanged", got)
	}
}
