// Package ui provides user interface functionality for the Notescape application.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// UI writes status messages and note views to a single writer.
type UI struct {
	*Visualizer
	NoteUI *NoteUI
}

// NewUI creates a UI writing to w. Colors are emitted only if useColor is set.
func NewUI(w io.Writer, useColor bool) *UI {
	v := NewVisualizer(w, useColor)
	return &UI{
		Visualizer: v,
		NoteUI:     &NoteUI{visualizer: v},
	}
}

// IsTerminal reports whether w is an interactive terminal. Colors are only
// worth emitting when it is.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (u *UI) Error(message string) {
	u.Printf("%s %s\n", u.colorize("!", ColorRed), u.colorize(message, ColorLightOrange))
}

func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

func (u *UI) Warning(message string) {
	u.Printf("%s %s\n", u.colorize("?", ColorLightRed), u.colorize(message, ColorLightYellow))
}

func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorGray)
}

// Menu prints the numbered command menu preceded by a blank line.
func (u *UI) Menu(items []string) {
	u.Println("")
	for i, item := range items {
		u.Printf("%s %s\n", u.colorize(fmt.Sprintf("%d.", i+1), ColorLightBlue), item)
	}
}

// Prompt returns a prompt string for readline, colored when enabled.
func (u *UI) Prompt(text string) string {
	if !strings.HasSuffix(text, " ") {
		text += " "
	}
	return u.colorize(text, ColorWhite)
}
