package textproc

import (
	"strings"
	"testing"
)

func TestCleanText_PageArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		notWant string
	}{
		{"page x of y", "Revenue grew.\nPage 3 of 10 \nMargins improved.", "Page 3 of 10"},
		{"dashed page number", "Revenue grew.\n- 7 -\nMargins improved.", "- 7 -"},
		{"standalone number line", "Revenue grew.\n42\nMargins improved.", "\n42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			if strings.Contains(got, tt.notWant) {
				t.Errorf("CleanText(%q) = %q; still contains %q", tt.input, got, tt.notWant)
			}
			if !strings.Contains(got, "Revenue grew.") || !strings.Contains(got, "Margins improved.") {
				t.Errorf("CleanText(%q) = %q; dropped real content", tt.input, got)
			}
		})
	}
}

func TestCleanText_Whitespace(t *testing.T) {
	got := CleanText("a    b\nline with trailing   \n\n\n\n\nnext")
	if strings.Contains(got, "  ") {
		t.Errorf("runs of spaces survived: %q", got)
	}
	if strings.Contains(got, "trailing \n") || strings.Contains(got, "trailing\t") {
		t.Errorf("trailing whitespace survived: %q", got)
	}
	if strings.Contains(got, "\n\n\n\n") {
		t.Errorf("more than three consecutive newlines survived: %q", got)
	}
}

func TestCleanText_HyphenatedLineBreak(t *testing.T) {
	got := CleanText("profit-\nability improved")
	if !strings.Contains(got, "profitability") {
		t.Errorf("hyphen-broken word not rejoined: %q", got)
	}
}

func TestCleanText_LineEndings(t *testing.T) {
	got := CleanText("one\r\ntwo\rthree")
	if strings.ContainsAny(got, "\r") {
		t.Errorf("carriage returns survived: %q", got)
	}
	if got != "one\ntwo\nthree" {
		t.Errorf("got %q, want %q", got, "one\ntwo\nthree")
	}
}

func TestCleanText_Empty(t *testing.T) {
	if got := CleanText(""); got != "" {
		t.Errorf("CleanText(\"\") = %q, want empty", got)
	}
	if got := CleanText("   \n\n  "); got != "" {
		t.Errorf("CleanText(whitespace) = %q, want empty", got)
	}
}
