package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
)

// Output writes informational messages. Styles are bound to a renderer for
// the destination writer, so colour is dropped when it is not a terminal.
type Output struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

func NewOutput(w io.Writer) *Output {
	r := lipgloss.NewRenderer(w)
	return &Output{
		w:        w,
		renderer: r,
		info:     r.NewStyle(),
		success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("3")),
		header:   r.NewStyle().Bold(true).Padding(0, 1),
		cell:     r.NewStyle().Padding(0, 1),
	}
}

func (o *Output) Info(format string, args ...any) {
	o.println(o.info, format, args...)
}

func (o *Output) Success(format string, args ...any) {
	o.println(o.success, format, args...)
}

func (o *Output) Warn(format string, args ...any) {
	o.println(o.warn, format, args...)
}

// Table renders rows under headers with a normal border.
func (o *Output) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(o.renderer.NewStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return o.header
			}
			return o.cell
		})

	fmt.Fprintln(o.w, t.String())
}

func (o *Output) println(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(o.w, style.Render(fmt.Sprintf(format, args...)))
}

// NewLogger returns the error channel logger. Debug messages are only
// emitted when verbose is set.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
