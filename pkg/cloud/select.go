/*
Package cloud turns a word frequency table into an HTML tag cloud.

It selects the N most frequent words, tracks the count range of exactly that
selection, maps counts onto font sizes, and renders the final page.
*/
package cloud

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tagforge/tagcloud/pkg/freq"
)

// Selection is the subset of words chosen for rendering, held in ascending
// case-insensitive alphabetical order, plus the count range of exactly these
// words. An empty selection has Min and Max of zero.
type Selection struct {
	Words []freq.Pair
	Min   int
	Max   int
}

// Select picks the n most frequent pairs. Ties on count break alphabetically
// ascending, case-insensitive, so the result is deterministic regardless of
// the order the table iterates in. When n exceeds the vocabulary size every
// word is taken. Negative n is treated as zero; callers validate user input
// before it gets here.
func Select(pairs []freq.Pair, n int) Selection {
	col := collate.New(language.English, collate.IgnoreCase)

	byCount := make([]freq.Pair, len(pairs))
	copy(byCount, pairs)
	sort.SliceStable(byCount, func(i, j int) bool {
		if byCount[i].Count != byCount[j].Count {
			return byCount[i].Count > byCount[j].Count
		}
		return col.CompareString(byCount[i].Word, byCount[j].Word) < 0
	})

	if n < 0 {
		n = 0
	}
	if n > len(byCount) {
		n = len(byCount)
	}

	sel := Selection{Words: byCount[:n:n]}
	for i, p := range sel.Words {
		if i == 0 {
			sel.Min, sel.Max = p.Count, p.Count
			continue
		}
		if p.Count > sel.Max {
			sel.Max = p.Count
		}
		if p.Count < sel.Min {
			sel.Min = p.Count
		}
	}

	sort.SliceStable(sel.Words, func(i, j int) bool {
		return col.CompareString(sel.Words[i].Word, sel.Words[j].Word) < 0
	})
	return sel
}
