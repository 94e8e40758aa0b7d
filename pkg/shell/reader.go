package shell

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader yields one input line per call and io.EOF when input ends.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// LineScanner reads lines from a plain reader, printing the prompt itself
type LineScanner struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewLineScanner creates a LineReader over r that writes prompt to out before each line
func NewLineScanner(r io.Reader, out io.Writer, prompt string) *LineScanner {
	return &LineScanner{
		scanner: bufio.NewScanner(r),
		out:     out,
		prompt:  prompt,
	}
}

// Readline implements LineReader
func (s *LineScanner) Readline() (string, error) {
	if s.prompt != "" {
		fmt.Fprint(s.out, s.prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
