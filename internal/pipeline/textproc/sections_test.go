package textproc

import (
	"testing"
)

func TestDetectSections_HeaderPatterns(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"all caps", "QUARTERLY PERFORMANCE"},
		{"numbered", "1. Business update for the quarter"},
		{"keyword", "Management discussion and analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Some opening remarks here\nmore opening remarks\n" + tt.header + "\nbody content line\nanother body line"
			sections := DetectSections(text)
			if len(sections) != 2 {
				t.Fatalf("expected 2 sections (Introduction + header), got %d: %+v", len(sections), sections)
			}
			if sections[0].Title != "Introduction" {
				t.Errorf("first section title = %q, want Introduction", sections[0].Title)
			}
			if sections[1].Title != tt.header {
				t.Errorf("second section title = %q, want %q", sections[1].Title, tt.header)
			}
		})
	}
}

func TestDetectSections_StandaloneShortLine(t *testing.T) {
	text := "intro text goes on this line\n\nOrder book and pipeline\nwe won three new contracts\nmore detail"
	sections := DetectSections(text)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(sections), sections)
	}
	if sections[1].Title != "Order book and pipeline" {
		t.Errorf("section title = %q", sections[1].Title)
	}
}

func TestDetectSections_HeaderAtLineZeroReplacesIntroduction(t *testing.T) {
	text := "FINANCIAL RESULTS\nrevenue was up this quarter\nmore body text"
	sections := DetectSections(text)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(sections), sections)
	}
	if sections[0].Title != "FINANCIAL RESULTS" {
		t.Errorf("title = %q", sections[0].Title)
	}
	if sections[0].CharStart != 0 {
		t.Errorf("CharStart = %d, want 0", sections[0].CharStart)
	}
}

func TestDetectSections_NoHeaders(t *testing.T) {
	text := "just some ordinary prose without anything header like in it\nand a second ordinary prose line continuing the thought here"
	if sections := DetectSections(text); sections != nil {
		t.Errorf("expected nil for headerless text, got %+v", sections)
	}
}

func TestDetectSections_CharOffsetsCoverDocument(t *testing.T) {
	text := "OPENING\nalpha beta gamma\nHIGHLIGHTS\ndelta epsilon\nfinal line of text"
	sections := DetectSections(text)
	if len(sections) == 0 {
		t.Fatal("no sections detected")
	}
	if sections[0].CharStart != 0 {
		t.Errorf("first section CharStart = %d, want 0", sections[0].CharStart)
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].CharStart != sections[i-1].CharEnd {
			t.Errorf("gap between section %d end (%d) and section %d start (%d)",
				i-1, sections[i-1].CharEnd, i, sections[i].CharStart)
		}
	}
	last := sections[len(sections)-1]
	if last.CharEnd != len(text) {
		t.Errorf("last section ends at %d, document has %d chars", last.CharEnd, len(text))
	}
	// every section must be a valid slice of the document
	for _, s := range sections {
		if s.CharStart < 0 || s.CharEnd > len(text) || s.CharStart > s.CharEnd {
			t.Errorf("section %q has out-of-bounds offsets [%d:%d]", s.Title, s.CharStart, s.CharEnd)
		}
	}
}
