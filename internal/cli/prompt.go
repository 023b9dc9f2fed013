// Package cli handles the interactive prompts and console output of the
// tagcloud binary.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prompter reads the three run parameters from the console: input file path,
// output file path, and desired word count.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a prompter on stdin/stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// NewPrompterWith returns a prompter on the given streams.
func NewPrompterWith(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine prints the prompt and returns the next trimmed line.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// InputPath prompts for the input file path.
func (p *Prompter) InputPath() (string, error) {
	path, err := p.readLine("Please enter the name of input file:")
	if err != nil {
		log.Errorf("Error reading input file name: %v", err)
		return "", err
	}
	return path, nil
}

// OutputPath prompts for the output file path.
func (p *Prompter) OutputPath() (string, error) {
	path, err := p.readLine("Please enter name of output file:")
	if err != nil {
		log.Errorf("Error reading output file name: %v", err)
		return "", err
	}
	return path, nil
}

// WordCount prompts for the desired number of words. A line that does not
// read or parse never aborts the run: the count falls back to zero with a
// warning, matching the permissive console behavior this tool inherits.
// An empty line picks the configured default.
func (p *Prompter) WordCount(defaultCount int) int {
	raw, err := p.readLine("Enter desired number of words:")
	if err != nil {
		log.Warnf("Error reading number of words: %v. Proceeding with 0.", err)
		return 0
	}
	if raw == "" {
		log.Infof("No count entered, using the default of %d", defaultCount)
		return ClampCount(int64(defaultCount))
	}
	return ParseCount(raw)
}
