/*
Package freq builds a word frequency table from plain text.

Words are lowercased before counting, separator runs are discarded, and
counts only ever grow. The table is backed by a patricia trie so the word
set stays compact even for large vocabularies.
*/
package freq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/tagforge/tagcloud/pkg/tokenize"
)

// DefaultSeparators is the delimiter set used when the config does not
// override it: common whitespace plus the punctuation the cloud ignores.
const DefaultSeparators = " \t\n\r,.-;*`/\"@#$%&()[]"

// Pair is one (word, count) entry of the table.
type Pair struct {
	Word  string
	Count int
}

// Counter accumulates occurrence counts for lowercased words.
type Counter struct {
	seps   tokenize.SeparatorSet
	trie   *patricia.Trie
	unique int
}

// NewCounter returns an empty counter using the given separator set.
func NewCounter(seps tokenize.SeparatorSet) *Counter {
	return &Counter{
		seps: seps,
		trie: patricia.NewTrie(),
	}
}

// Add records one occurrence of word. The word is lowercased first.
func (c *Counter) Add(word string) {
	key := patricia.Prefix(strings.ToLower(word))
	if item := c.trie.Get(key); item != nil {
		c.trie.Set(key, item.(int)+1)
		return
	}
	c.trie.Insert(key, 1)
	c.unique++
}

// CountLine tokenizes one line and counts its word tokens.
func (c *Counter) CountLine(line string) {
	sc := tokenize.NewScanner(line, c.seps)
	for {
		tok, ok := sc.Next()
		if !ok {
			return
		}
		if tok.Kind == tokenize.KindWord {
			c.Add(tok.Text)
		}
	}
}

// CountReader counts every word in r, line by line. Tokens never span lines.
// On a read failure partway through, counting stops and the table keeps
// whatever was accumulated so far; the error is logged and returned so the
// caller can decide whether the partial table is still worth rendering.
func (c *Counter) CountReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c.CountLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("Error reading from file: %v", err)
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Count returns the occurrence count of word (lowercased), or 0.
func (c *Counter) Count(word string) int {
	item := c.trie.Get(patricia.Prefix(strings.ToLower(word)))
	if item == nil {
		return 0
	}
	return item.(int)
}

// Len returns the number of unique words counted.
func (c *Counter) Len() int {
	return c.unique
}

// Pairs returns every (word, count) entry of the table. Order is whatever
// the trie walk yields; callers that need a particular order must sort.
func (c *Counter) Pairs() []Pair {
	pairs := make([]Pair, 0, c.unique)
	err := c.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		pairs = append(pairs, Pair{Word: string(prefix), Count: item.(int)})
		return nil
	})
	if err != nil {
		log.Errorf("Error walking frequency table: %v", err)
	}
	return pairs
}
