package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// Prompter asks the operator a yes/no question.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// NewPrompter returns a form prompter when in is a terminal and a line
// prompter reading from in otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		return &FormPrompter{}
	}
	return NewLinePrompter(in, out)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(f.Fd())
}

// FormPrompter renders each question as a huh confirm form.
type FormPrompter struct{}

func (p *FormPrompter) Confirm(message string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}

// LinePrompter asks on out and reads one line per answer from in. An empty
// answer means no; anything other than y/yes/n/no is asked again.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *LinePrompter) Confirm(message string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", message)

		response, err := p.reader.ReadString('\n')
		if err != nil && (err != io.EOF || response == "") {
			fmt.Fprintln(p.out)
			return false, NormalizeAbort(err)
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}

		fmt.Fprintln(p.out, "Invalid input. Please enter 'y' or 'n'.")
	}
}
