// Package report writes a machine-readable summary of one tagcloud run as a
// msgpack sidecar next to the HTML output.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tagforge/tagcloud/pkg/cloud"
)

// WordEntry is one rendered word with its count and font size.
type WordEntry struct {
	Word     string `msgpack:"w"`
	Count    int    `msgpack:"c"`
	FontSize int    `msgpack:"f"`
}

// Run summarizes a single generation pass.
type Run struct {
	Input       string      `msgpack:"input"`
	Requested   int         `msgpack:"requested"`
	Rendered    int         `msgpack:"rendered"`
	MinCount    int         `msgpack:"min"`
	MaxCount    int         `msgpack:"max"`
	Words       []WordEntry `msgpack:"words"`
	GeneratedAt time.Time   `msgpack:"at"`
}

// FromSelection builds a Run from a finished selection.
func FromSelection(sel cloud.Selection, scale cloud.FontScale, input string, requested int) *Run {
	run := &Run{
		Input:       input,
		Requested:   requested,
		Rendered:    len(sel.Words),
		MinCount:    sel.Min,
		MaxCount:    sel.Max,
		Words:       make([]WordEntry, 0, len(sel.Words)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, p := range sel.Words {
		run.Words = append(run.Words, WordEntry{
			Word:     p.Word,
			Count:    p.Count,
			FontSize: scale.Size(sel.Min, sel.Max, p.Count),
		})
	}
	return run
}

// Path returns the sidecar path for an HTML output path.
func Path(outPath string) string {
	return outPath + ".report.msgpack"
}

// Write encodes run to path.
func Write(path string, run *Run) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer file.Close()

	if err := msgpack.NewEncoder(file).Encode(run); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// Read decodes a run summary from path.
func Read(path string) (*Run, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report file: %w", err)
	}
	defer file.Close()

	var run Run
	if err := msgpack.NewDecoder(file).Decode(&run); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &run, nil
}
