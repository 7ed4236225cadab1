package ui

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"notescape/local-app/internal/data"
	"notescape/local-app/internal/models"
)

// NoteUI renders notes and the note tree. Note text is always printed
// verbatim; only the decoration around it is colored.
type NoteUI struct {
	visualizer *Visualizer
}

// Tree prints one rendered tree line per entry, dimming the indentation and
// branch marker.
func (nui *NoteUI) Tree(lines iter.Seq[string]) {
	v := nui.visualizer
	for line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		if title, ok := strings.CutPrefix(trimmed, data.BranchMarker); ok {
			v.PrintColored(indent+data.BranchMarker, ColorGray)
			v.Println(title)
			continue
		}
		v.Println(line)
	}
}

func (nui *NoteUI) field(label, value string) {
	nui.visualizer.PrintColored(label+":", ColorYellow)
	nui.visualizer.Println(" " + value)
}

// NoteInfo displays every field of a single note.
func (nui *NoteUI) NoteInfo(note *models.Note) {
	nui.field("Title", note.Title())
	if note.Content() != "" {
		nui.field("Content", note.Content())
	}
	if note.HasReminder() {
		nui.field("Reminder", data.FormatReminder(note.Reminder()))
	}
	if note.HasImage() {
		nui.field("Image", note.ImagePath())
	}
	if p := note.Parent(); p != nil {
		nui.field("Parent", p.Title())
	}
	if n := len(note.Children()); n > 0 {
		nui.field("Sub-notes", fmt.Sprint(n))
	}
}

// Reminders lists notes with reminders, flagging the ones already due at now.
func (nui *NoteUI) Reminders(notes []*models.Note, now time.Time) {
	v := nui.visualizer
	if len(notes) == 0 {
		v.Println("No reminders set.")
		return
	}

	v.Printf("%d reminder(s):\n", len(notes))
	for _, n := range notes {
		v.PrintColored(data.FormatReminder(n.Reminder()), ColorOrange)
		v.Print(" " + n.Title())
		if n.Reminder().Before(now) {
			v.Print(" ")
			v.PrintColored("(due)", ColorLightRed)
		}
		v.Println("")
	}
}
