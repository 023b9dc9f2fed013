package cli

import (
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/tagforge/tagcloud/internal/utils"
)

// MaxWordCount bounds the requested word count. Larger requests are clamped,
// never rejected: the selection caps at the vocabulary size anyway.
const MaxWordCount = math.MaxInt32

// ParseCount turns the raw console or flag value into a usable word count.
// Nothing here stops the run: unparsable input falls back to zero, negative
// values clamp to zero, oversized values clamp to MaxWordCount. Every
// adjustment is reported as a warning.
func ParseCount(raw string) int {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warnf("Could not parse word count %q: %v. Proceeding with 0.", raw, err)
		return 0
	}
	return ClampCount(n)
}

// ClampCount bounds n to [0, MaxWordCount] with a warning on each side.
func ClampCount(n int64) int {
	if n < 0 {
		log.Warnf("Word count must not be negative, got %d. Proceeding with 0.", n)
		return 0
	}
	if n > MaxWordCount {
		log.Warnf("Word count %d exceeds the maximum %s. Proceeding with the maximum.",
			n, utils.FormatWithCommas(MaxWordCount))
		return MaxWordCount
	}
	return int(n)
}
