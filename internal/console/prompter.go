package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter reads one answer per line. Once input is exhausted every call
// returns io.EOF.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// NewStdPrompter is bound to the process terminal.
func NewStdPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

func (p *Prompter) Out() io.Writer {
	return p.out
}

func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// AskDefault returns def when the answer is empty.
func (p *Prompter) AskDefault(question, def string) (string, error) {
	answer, err := p.Ask(fmt.Sprintf("%s [%s]: ", question, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskOptionalInt returns nil for an empty answer.
func (p *Prompter) AskOptionalInt(question string) (*int, error) {
	answer, err := p.Ask(question)
	if err != nil || answer == "" {
		return nil, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", answer)
	}
	return &n, nil
}

// AskOptionalBool accepts y/yes and n/no; an empty answer returns nil.
func (p *Prompter) AskOptionalBool(question string) (*bool, error) {
	answer, err := p.Ask(question)
	if err != nil || answer == "" {
		return nil, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		v := true
		return &v, nil
	case "n", "no":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("%q is not y or n", answer)
}

// Confirm is true only for an explicit y/yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	a := strings.ToLower(answer)
	return a == "y" || a == "yes", nil
}
