package textproc

import (
	"strings"

	"github.com/akolanti/CatalystAPI/internal/config"
)

// ChunkSemantic splits cleaned text into chunks of at most maxChunkSize
// characters, preferring section boundaries. Sections accumulate into a
// running chunk; a flush seeds the next chunk with the trailing
// overlapChars of the flushed one. A single section larger than
// maxChunkSize is split further by fixed-size chunking. Falls back to
// page-based chunking when no sections are detected.
func ChunkSemantic(text string, maxChunkSize, overlapChars int) []string {
	sections := DetectSections(text)
	if len(sections) == 0 {
		return ChunkPageBased(text, maxChunkSize, overlapChars)
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, section := range sections {
		sectionText := text[section.CharStart:section.CharEnd]

		if len(sectionText) > maxChunkSize {
			flush()
			chunks = append(chunks, ChunkFixedSize(sectionText, maxChunkSize, overlapChars)...)
			continue
		}

		if current.Len()+len(sectionText) > maxChunkSize && current.Len() > 0 {
			flush()
			if overlapChars > 0 && len(chunks) > 0 {
				current.WriteString(tailOf(chunks[len(chunks)-1], overlapChars))
				current.WriteString("\n\n")
			}
			current.WriteString(sectionText)
			continue
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(sectionText)
	}

	flush()
	return chunks
}

// ChunkFixedSize walks the text in maxChunkSize windows, trimming each
// window back to the last sentence or line break when one falls within the
// final 20% of the window. Consecutive windows overlap by overlapChars.
func ChunkFixedSize(text string, maxChunkSize, overlapChars int) []string {
	var chunks []string
	start := 0

	for start < len(text) {
		end := start + maxChunkSize
		if end > len(text) {
			end = len(text)
		}
		chunk := text[start:end]

		if end < len(text) {
			searchFrom := len(chunk) - 200
			if searchFrom < 0 {
				searchFrom = 0
			}
			lastPeriod := strings.LastIndex(chunk[searchFrom:], ".")
			lastNewline := strings.LastIndex(chunk[searchFrom:], "\n")
			breakPoint := lastPeriod
			if lastNewline > breakPoint {
				breakPoint = lastNewline
			}
			if breakPoint >= 0 {
				breakPoint += searchFrom
				if float64(breakPoint) > float64(len(chunk))*0.8 {
					chunk = chunk[:breakPoint+1]
					end = start + breakPoint + 1
				}
			}
		}

		chunks = append(chunks, strings.TrimSpace(chunk))

		if end >= len(text) {
			break
		}
		next := end - overlapChars
		if next <= start {
			// overlap must never stall the window
			next = end
		}
		start = next
	}

	return chunks
}

// ChunkPageBased derives a window size from an estimated page size
// (config.CharsPerPage chars per page) and slides it with the same
// overlap-by-character-count as fixed-size chunking, without the
// sentence-boundary preference.
func ChunkPageBased(text string, maxChunkSize, overlapChars int) []string {
	estimatedPages := len(text) / config.CharsPerPage
	if estimatedPages < 1 {
		estimatedPages = 1
	}
	charsPerPage := len(text) / estimatedPages

	pagesPerChunk := maxChunkSize / charsPerPage
	if pagesPerChunk < 1 {
		pagesPerChunk = 1
	}
	chunkSize := pagesPerChunk * charsPerPage

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, strings.TrimSpace(text[start:end]))
		if end >= len(text) {
			break
		}
		next := end - overlapChars
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

func tailOf(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
