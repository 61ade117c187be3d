package docModel

// Section is a labeled region of cleaned text found by header detection.
// Start/End are line indices; CharStart/CharEnd are absolute offsets into
// the cleaned text. Sections are ordered, non-overlapping and cover the
// whole document.
type Section struct {
	Title     string
	Start     int
	End       int
	CharStart int
	CharEnd   int
}
