package ui

import (
	"fmt"
	"io"
)

// Visualizer prints plain or colored text to a writer.
type Visualizer struct {
	writer   io.Writer
	useColor bool
}

func NewVisualizer(w io.Writer, useColor bool) *Visualizer {
	return &Visualizer{
		writer:   w,
		useColor: useColor,
	}
}

func (v *Visualizer) colorize(message string, color Color) string {
	if !v.useColor || color == ColorDefault || message == "" {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (v *Visualizer) Print(message string) {
	fmt.Fprint(v.writer, message)
}

func (v *Visualizer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(v.writer, format, args...)
}

func (v *Visualizer) Println(message string) {
	fmt.Fprintln(v.writer, message)
}

func (v *Visualizer) PrintColored(message string, color Color) {
	fmt.Fprint(v.writer, v.colorize(message, color))
}

func (v *Visualizer) PrintlnColored(message string, color Color) {
	fmt.Fprintln(v.writer, v.colorize(message, color))
}
