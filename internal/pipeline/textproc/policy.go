package textproc

import (
	"fmt"

	"github.com/akolanti/CatalystAPI/internal/config"
)

// EstimateTokens is the rough 4-characters-per-token heuristic for
// English text.
func EstimateTokens(text string) int {
	return len(text) / config.CharsPerToken
}

// NeedsChunking decides whether a document must be split before
// summarization. Checks run in order: page count, character count, token
// estimate; the first limit exceeded wins and names the reason.
func NeedsChunking(text string, pageCount int) (bool, string) {
	charCount := len(text)

	if pageCount > config.ChunkingPageLimit {
		return true, fmt.Sprintf("Page count (%d) exceeds %d pages", pageCount, config.ChunkingPageLimit)
	}
	if charCount > config.ChunkingCharLimit {
		return true, fmt.Sprintf("Character count (%d) exceeds %d", charCount, config.ChunkingCharLimit)
	}
	if tokens := EstimateTokens(text); tokens > config.ChunkingTokenLimit {
		return true, fmt.Sprintf("Estimated tokens (%d) exceeds %d", tokens, config.ChunkingTokenLimit)
	}

	return false, "Within limits"
}
