// Package models defines the note entity and the parent/child linkage of the note tree.
package models

import "time"

// RootTitle is the title of the permanent top-level note.
const RootTitle = "Root"

// Note is a node of the note tree. Children are owned by the note; parent is a
// back-reference used only to unlink a note from its owner and to compute depth.
type Note struct {
	title     string
	content   string
	reminder  *time.Time
	imagePath string
	children  []*Note
	parent    *Note
}

// NewNote creates a detached note with the given title.
func NewNote(title string) *Note {
	return &Note{
		title:    title,
		children: make([]*Note, 0),
	}
}

// NewRoot creates the anchor note of a new tree.
func NewRoot() *Note {
	return NewNote(RootTitle)
}

// CreateChild constructs a new note titled title and appends it to parent.
func CreateChild(parent *Note, title string) *Note {
	child := NewNote(title)
	parent.AddChild(child)
	return child
}

// AddChild links child under n, keeping insertion order.
func (n *Note) AddChild(child *Note) {
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild unlinks a direct child of n. It reports whether child was found.
func (n *Note) RemoveChild(child *Note) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

func (n *Note) Title() string        { return n.title }
func (n *Note) Content() string      { return n.content }
func (n *Note) ImagePath() string    { return n.imagePath }
func (n *Note) Parent() *Note        { return n.parent }
func (n *Note) IsRoot() bool         { return n.parent == nil }
func (n *Note) HasReminder() bool    { return n.reminder != nil }
func (n *Note) HasImage() bool       { return n.imagePath != "" }
func (n *Note) Reminder() *time.Time { return n.reminder }

// Children returns the child slice in insertion order. Callers must not modify it.
func (n *Note) Children() []*Note {
	return n.children
}

// Depth is the number of edges between n and the root of its tree.
func (n *Note) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

func (n *Note) SetTitle(title string) {
	n.title = title
}

func (n *Note) SetContent(content string) {
	n.content = content
}

// SetReminder stores a copy of reminder truncated to the minute. A nil value clears it.
func (n *Note) SetReminder(reminder *time.Time) {
	if reminder == nil {
		n.reminder = nil
		return
	}
	r := reminder.Truncate(time.Minute)
	n.reminder = &r
}

func (n *Note) SetImagePath(path string) {
	n.imagePath = path
}

// String returns the note title.
func (n *Note) String() string {
	return n.title
}
