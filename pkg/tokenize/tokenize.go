/*
Package tokenize splits lines of text into maximal runs of separator and
non-separator characters.

Every line is partitioned exactly: concatenating the tokens of a line
reconstructs it, and no token is ever empty. A token is either a word (a
maximal run of non-separator characters) or a separator run (a maximal run of
separator characters). Which characters count as separators is fixed per run
through a SeparatorSet.
*/
package tokenize

// Kind classifies a token as a word or a separator run.
type Kind int

const (
	// KindWord marks a maximal run of non-separator characters.
	KindWord Kind = iota
	// KindSeparator marks a maximal run of separator characters.
	KindSeparator
)

// Token is one maximal run scanned from a line.
type Token struct {
	Text string
	Kind Kind
}

// SeparatorSet holds the characters treated as delimiters. Membership is
// O(1); the set never changes after construction.
type SeparatorSet map[rune]struct{}

// NewSeparatorSet builds a set from the characters of s.
// Duplicate characters collapse into one entry.
func NewSeparatorSet(s string) SeparatorSet {
	set := make(SeparatorSet, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is a separator.
func (set SeparatorSet) Contains(r rune) bool {
	_, ok := set[r]
	return ok
}

// Scanner walks a single line token by token. It is lazy and restartable:
// Next advances one maximal run at a time and Reset rewinds to the start.
type Scanner struct {
	line []rune
	pos  int
	seps SeparatorSet
}

// NewScanner returns a scanner positioned at the start of line.
func NewScanner(line string, seps SeparatorSet) *Scanner {
	return &Scanner{line: []rune(line), seps: seps}
}

// Next returns the maximal run starting at the current position and advances
// past it. The second return is false once the line is exhausted.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.line) {
		return Token{}, false
	}
	isSep := s.seps.Contains(s.line[s.pos])
	end := s.pos
	for end < len(s.line) && s.seps.Contains(s.line[end]) == isSep {
		end++
	}
	tok := Token{Text: string(s.line[s.pos:end]), Kind: KindWord}
	if isSep {
		tok.Kind = KindSeparator
	}
	s.pos = end
	return tok, true
}

// Reset rewinds the scanner to the start of its line.
func (s *Scanner) Reset() {
	s.pos = 0
}

// Split returns all tokens of line in order. Convenience wrapper around
// Scanner for callers that want the whole partition at once.
func Split(line string, seps SeparatorSet) []Token {
	var tokens []Token
	sc := NewScanner(line, seps)
	for {
		tok, ok := sc.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
