package outline

import (
	"errors"
	"testing"
)

func mustLoad(t *testing.T, text string, width int) *Document {
	t.Helper()
	d, err := Load(text, width)
	if err != nil {
		t.Fatalf("Load(%q): %v", text, err)
	}
	return d
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int // 0 = valid
	}{
		{"single bullet", "- root", 0},
		{"nested", "- root\n  - child\n- sibling", 0},
		{"blank separators pass", "- a\n\n- b", 0},
		{"whitespace-only line passes", "- a\n   \n- b", 0},
		{"bare text rejected", "- a\nnot a bullet", 2},
		{"first line rejected", "oops\n- a", 1},
		{"indented bare text rejected", "- a\n  - b\n  c", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.text, 2)
			if tt.wantLine == 0 {
				if err != nil {
					t.Fatalf("Load: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Load: got %v, want ValidationError", err)
			}
			if verr.Line != tt.wantLine {
				t.Errorf("offending line = %d, want %d", verr.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadSerializeRoundTrip(t *testing.T) {
	docs := []string{
		"- root",
		"- root\n  - child\n- sibling",
		"- a\n\n- b",
		"-  double  spaced  content",
		"- parent\n  - child\n    - grandchild\n      - deeper",
	}
	for _, text := range docs {
		d := mustLoad(t, text, 2)
		if got := d.Serialize(); got != text {
			t.Errorf("Serialize = %q, want %q (raw form must survive load unchanged)", got, text)
		}
		// Stability through a second pass.
		d2 := mustLoad(t, d.Serialize(), 2)
		if d2.Serialize() != d.Serialize() {
			t.Errorf("round trip unstable: %q -> %q", d.Serialize(), d2.Serialize())
		}
	}
}

func TestLoadEmptySeedsPlaceholder(t *testing.T) {
	d := mustLoad(t, "", 2)
	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
	if got := d.At(0).Raw(); got != "- " {
		t.Errorf("seed line = %q, want %q", got, "- ")
	}
}

func TestDepths(t *testing.T) {
	d := mustLoad(t, "- root\n  - child\n- sibling", 2)
	if got := d.IndentWidth(); got != 2 {
		t.Errorf("IndentWidth = %d, want 2", got)
	}
	want := []int{0, 1, 0}
	for i, w := range want {
		if got := d.At(i).Depth(2); got != w {
			t.Errorf("line %d depth = %d, want %d", i, got, w)
		}
	}
}

func TestLineAccessors(t *testing.T) {
	tests := []struct {
		raw     string
		indent  int
		nontext int
		content string
	}{
		{"- root", 0, 2, "root"},
		{"  - child", 2, 4, "child"},
		{"    - deep", 4, 6, "deep"},
		{"- ", 0, 2, ""},
	}
	for _, tt := range tests {
		l := NewLine(tt.raw)
		if got := l.IndentLen(); got != tt.indent {
			t.Errorf("%q IndentLen = %d, want %d", tt.raw, got, tt.indent)
		}
		if got := l.NontextLen(); got != tt.nontext {
			t.Errorf("%q NontextLen = %d, want %d", tt.raw, got, tt.nontext)
		}
		if got := l.Content(); got != tt.content {
			t.Errorf("%q Content = %q, want %q", tt.raw, got, tt.content)
		}
	}
}
