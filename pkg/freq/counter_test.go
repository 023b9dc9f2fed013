package freq

import (
	"errors"
	"strings"
	"testing"

	"github.com/tagforge/tagcloud/pkg/tokenize"
)

func newTestCounter() *Counter {
	return NewCounter(tokenize.NewSeparatorSet(DefaultSeparators))
}

func TestCountReader(t *testing.T) {
	c := newTestCounter()
	err := c.CountReader(strings.NewReader("the cat sat on the mat. the cat ran."))
	if err != nil {
		t.Fatalf("CountReader: %v", err)
	}

	want := map[string]int{
		"the": 3,
		"cat": 2,
		"sat": 1,
		"on":  1,
		"mat": 1,
		"ran": 1,
	}
	if c.Len() != len(want) {
		t.Errorf("unique words: got %d, want %d", c.Len(), len(want))
	}
	for word, count := range want {
		if got := c.Count(word); got != count {
			t.Errorf("count(%q): got %d, want %d", word, got, count)
		}
	}
}

func TestCountFoldsCase(t *testing.T) {
	c := newTestCounter()
	if err := c.CountReader(strings.NewReader("The THE the tHe")); err != nil {
		t.Fatalf("CountReader: %v", err)
	}
	if got := c.Count("the"); got != 4 {
		t.Errorf("count(the): got %d, want 4", got)
	}
	if c.Len() != 1 {
		t.Errorf("unique words: got %d, want 1", c.Len())
	}
}

func TestCountAcrossLines(t *testing.T) {
	c := newTestCounter()
	// "to" + newline + "day" must stay two words: tokens never span lines.
	if err := c.CountReader(strings.NewReader("to\nday\nto")); err != nil {
		t.Fatalf("CountReader: %v", err)
	}
	if got := c.Count("to"); got != 2 {
		t.Errorf("count(to): got %d, want 2", got)
	}
	if got := c.Count("today"); got != 0 {
		t.Errorf("count(today): got %d, want 0", got)
	}
}

func TestSeparatorsNeverCounted(t *testing.T) {
	c := newTestCounter()
	if err := c.CountReader(strings.NewReader("a.b,c  d")); err != nil {
		t.Fatalf("CountReader: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("unique words: got %d, want 4", c.Len())
	}
	if got := c.Count("."); got != 0 {
		t.Errorf("separator run was counted: %d", got)
	}
}

// failingReader yields some data, then fails, to exercise the partial-table
// behavior on mid-read errors.
type failingReader struct {
	data string
	read bool
}

var errBroken = errors.New("disk unplugged")

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.read {
		f.read = true
		n := copy(p, f.data)
		return n, nil
	}
	return 0, errBroken
}

func TestCountReaderPartialOnFailure(t *testing.T) {
	c := newTestCounter()
	err := c.CountReader(&failingReader{data: "alpha beta\ngam"})
	if !errors.Is(err, errBroken) {
		t.Fatalf("want wrapped read error, got %v", err)
	}
	// The complete first line must survive in the table.
	if got := c.Count("alpha"); got != 1 {
		t.Errorf("count(alpha): got %d, want 1", got)
	}
	if got := c.Count("beta"); got != 1 {
		t.Errorf("count(beta): got %d, want 1", got)
	}
}

func TestPairsMatchTable(t *testing.T) {
	c := newTestCounter()
	if err := c.CountReader(strings.NewReader("b a b c b a")); err != nil {
		t.Fatalf("CountReader: %v", err)
	}
	pairs := c.Pairs()
	if len(pairs) != c.Len() {
		t.Fatalf("Pairs length %d != Len %d", len(pairs), c.Len())
	}
	seen := make(map[string]int)
	for _, p := range pairs {
		if _, dup := seen[p.Word]; dup {
			t.Errorf("duplicate word %q in Pairs", p.Word)
		}
		seen[p.Word] = p.Count
	}
	if seen["a"] != 2 || seen["b"] != 3 || seen["c"] != 1 {
		t.Errorf("unexpected pairs: %v", seen)
	}
}
