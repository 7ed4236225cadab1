package ui

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notescape/local-app/internal/data"
	"notescape/local-app/internal/models"
)

func TestTreePlainMatchesRender(t *testing.T) {
	root := models.NewRoot()
	a := models.CreateChild(root, "Groceries")
	models.CreateChild(a, "Milk")
	models.CreateChild(root, "Work")

	var buf bytes.Buffer
	NewUI(&buf, false).NoteUI.Tree(data.Render(root))

	want := strings.Join(slices.Collect(data.Render(root)), "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestTreeKeepsBracesInTitles(t *testing.T) {
	root := models.NewRoot()
	budget := models.CreateChild(root, "Budget {{2024}}")
	models.CreateChild(budget, "{{red}}rent")

	for _, color := range []bool{false, true} {
		var buf bytes.Buffer
		NewUI(&buf, color).NoteUI.Tree(data.Render(root))

		out := buf.String()
		assert.Contains(t, out, "Budget {{2024}}\n")
		assert.Contains(t, out, "{{red}}rent\n")
		if !color {
			want := strings.Join(slices.Collect(data.Render(root)), "\n") + "\n"
			assert.Equal(t, want, out)
		}
	}
}

func TestTreeColoredKeepsText(t *testing.T) {
	root := models.NewRoot()
	models.CreateChild(root, "Work")

	var buf bytes.Buffer
	NewUI(&buf, true).NoteUI.Tree(data.Render(root))

	out := buf.String()
	assert.Contains(t, out, string(ColorGray)+"  |_"+string(ColorDefault)+"Work")
	assert.True(t, strings.HasPrefix(out, "Root\n"))
}

func TestMessagesWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	u := NewUI(&buf, false)

	u.Error("bad")
	u.Warning("hmm")
	u.Success("ok")
	u.Info("fyi")

	assert.Equal(t, "! bad\n? hmm\nok\nfyi\n", buf.String())
}

func TestMenu(t *testing.T) {
	var buf bytes.Buffer
	NewUI(&buf, false).Menu([]string{"Create Note", "Exit"})
	assert.Equal(t, "\n1. Create Note\n2. Exit\n", buf.String())
}

func TestColorizeSkipsWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	v := NewVisualizer(&buf, false)
	v.PrintColored("a", ColorYellow)
	v.Print(" b")
	v.PrintlnColored(" c", ColorGray)
	assert.Equal(t, "a b c\n", buf.String())
}

func TestNoteInfo(t *testing.T) {
	root := models.NewRoot()
	n := models.CreateChild(root, "Dentist")
	n.SetContent("bring card")
	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	n.SetReminder(&due)
	n.SetImagePath("/pics/x.png")

	var buf bytes.Buffer
	NewUI(&buf, false).NoteUI.NoteInfo(n)

	assert.Equal(t, "Title: Dentist\nContent: bring card\nReminder: 2024-03-01 09:30\nImage: /pics/x.png\nParent: Root\n", buf.String())
}

func TestNoteInfoKeepsBraces(t *testing.T) {
	root := models.NewRoot()
	n := models.CreateChild(root, "Budget {{2024}}")
	n.SetContent("{{yellow}} is not a color here")

	var buf bytes.Buffer
	NewUI(&buf, true).NoteUI.NoteInfo(n)

	out := buf.String()
	assert.Contains(t, out, " Budget {{2024}}\n")
	assert.Contains(t, out, " {{yellow}} is not a color here\n")
}

func TestReminders(t *testing.T) {
	root := models.NewRoot()
	past := models.CreateChild(root, "past")
	future := models.CreateChild(root, "future")
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	p := now.Add(-time.Hour)
	f := now.Add(time.Hour)
	past.SetReminder(&p)
	future.SetReminder(&f)

	var buf bytes.Buffer
	u := NewUI(&buf, false)
	u.NoteUI.Reminders([]*models.Note{past, future}, now)
	assert.Equal(t, "2 reminder(s):\n2024-06-01 11:00 past (due)\n2024-06-01 13:00 future\n", buf.String())

	buf.Reset()
	u.NoteUI.Reminders(nil, now)
	assert.Equal(t, "No reminders set.\n", buf.String())
}

func TestIsTerminalNonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
