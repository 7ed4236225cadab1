package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader supplies one line of user input per call. *readline.Instance
// satisfies it; ScriptReader replays a file or string.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// NewReadline creates an interactive reader. historyFile may be empty.
func NewReadline(historyFile string, stdin io.ReadCloser, stdout io.Writer) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return rl, nil
}

// ScriptReader feeds scripted input lines, echoing each prompt and line to
// out so that a transcript reads like an interactive session.
type ScriptReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	out     io.Writer
	prompt  string
}

// NewScriptReader reads lines from r. If r is an io.Closer it is closed by Close.
func NewScriptReader(r io.Reader, out io.Writer) *ScriptReader {
	sr := &ScriptReader{
		scanner: bufio.NewScanner(r),
		out:     out,
	}
	if c, ok := r.(io.Closer); ok {
		sr.closer = c
	}
	return sr
}

func (s *ScriptReader) SetPrompt(prompt string) {
	s.prompt = prompt
}

func (s *ScriptReader) Readline() (string, error) {
	fmt.Fprint(s.out, s.prompt)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.out)
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimRight(s.scanner.Text(), "\r")
	fmt.Fprintln(s.out, line)
	return line, nil
}

func (s *ScriptReader) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
