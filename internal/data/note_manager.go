package data

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"notescape/local-app/internal/log"
	"notescape/local-app/internal/models"
)

// NoteInput carries the raw user-supplied values for a new note. Reminder and
// ImagePath are validated by the manager, not by the caller.
type NoteInput struct {
	Title     string
	Content   string
	ImagePath string
	Reminder  string
}

// EditInput carries the replacement values for an existing note. An empty
// Reminder keeps the stored one.
type EditInput struct {
	Title    string
	Content  string
	Reminder string
}

// CreateResult reports the created note and any field that had to be dropped.
type CreateResult struct {
	Note        *models.Note
	ReminderErr error
	ImageErr    error
}

// EditResult reports the edited note and a rejected reminder, if any.
type EditResult struct {
	Note        *models.Note
	ReminderErr error
}

// NoteManager owns the note tree for one application run.
//
// It takes no locks: Find, Delete and Edit must not run concurrently on the
// same manager, because Delete mutates a children slice that Find may be
// iterating.
type NoteManager struct {
	root   *models.Note
	logger *log.Logger
}

// NewNoteManager creates a manager holding a fresh tree with only the root.
func NewNoteManager(logger *log.Logger) *NoteManager {
	if logger == nil {
		logger = log.Nop()
	}
	return &NoteManager{
		root:   models.NewRoot(),
		logger: logger,
	}
}

func (nm *NoteManager) Root() *models.Note {
	return nm.root
}

// NoteCreate adds a note under the note titled parentTitle, or under the root
// when parentTitle is empty. Titles are unique across the tree. An invalid
// reminder or image path does not abort creation: the field is left unset and
// the problem is reported in the result.
func (nm *NoteManager) NoteCreate(parentTitle string, in NoteInput) (CreateResult, error) {
	parent := nm.root
	if parentTitle != "" {
		var err error
		parent, err = nm.NoteFind(parentTitle)
		if err != nil {
			return CreateResult{}, fmt.Errorf("failed to find parent note: %w", err)
		}
	}

	if _, err := nm.NoteFind(in.Title); err == nil {
		return CreateResult{}, fmt.Errorf("%w: %q", ErrDuplicateTitle, in.Title)
	}

	var res CreateResult
	note := models.CreateChild(parent, in.Title)
	note.SetContent(in.Content)

	if imagePath, err := ValidateImagePath(in.ImagePath); err != nil {
		res.ImageErr = err
	} else {
		note.SetImagePath(imagePath)
	}

	if reminder, err := ParseReminder(in.Reminder); err != nil {
		res.ReminderErr = err
	} else {
		note.SetReminder(reminder)
	}

	res.Note = note
	nm.logger.Info("note created", log.Fields{"title": in.Title, "parent": parent.Title()})
	return res, nil
}

// NoteFind returns the first note in pre-order titled title.
func (nm *NoteManager) NoteFind(title string) (*models.Note, error) {
	return Find(nm.root, title)
}

// NoteDelete removes the note titled title, and its subtree, from its parent.
func (nm *NoteManager) NoteDelete(title string) error {
	note, err := nm.NoteFind(title)
	if err != nil {
		return err
	}
	if note.IsRoot() {
		return ErrCannotDeleteRoot
	}

	parent := note.Parent()
	if !parent.RemoveChild(note) {
		return fmt.Errorf("note %q is not linked to its parent %q", title, parent.Title())
	}

	nm.logger.Info("note deleted", log.Fields{"title": title, "parent": parent.Title()})
	return nil
}

// NoteEdit overwrites the title and content of the note titled title. The
// reminder is replaced only when in.Reminder is non-empty and valid; a
// malformed reminder keeps the stored value and is reported in the result.
func (nm *NoteManager) NoteEdit(title string, in EditInput) (EditResult, error) {
	note, err := nm.NoteFind(title)
	if err != nil {
		return EditResult{}, err
	}

	if in.Title != note.Title() {
		if _, err := nm.NoteFind(in.Title); err == nil {
			return EditResult{}, fmt.Errorf("%w: %q", ErrDuplicateTitle, in.Title)
		}
	}

	res := EditResult{Note: note}
	note.SetTitle(in.Title)
	note.SetContent(in.Content)

	reminder, err := ParseReminder(in.Reminder)
	switch {
	case err != nil:
		res.ReminderErr = err
	case reminder != nil:
		note.SetReminder(reminder)
	}

	nm.logger.Info("note edited", log.Fields{"title": title, "new_title": in.Title})
	return res, nil
}

// Lines renders the whole tree.
func (nm *NoteManager) Lines() []string {
	return slices.Collect(Render(nm.root))
}

// Render yields the whole tree lazily.
func (nm *NoteManager) Render() iter.Seq[string] {
	return Render(nm.root)
}

// Flatten returns every note, root included, in pre-order.
func (nm *NoteManager) Flatten() []*models.Note {
	return Flatten(nm.root)
}

// Count is the number of notes in the tree, root included.
func (nm *NoteManager) Count() int {
	count := 0
	for range Walk(nm.root) {
		count++
	}
	return count
}

// Reminders returns every note carrying a reminder, earliest first. Notes with
// equal reminders keep their pre-order position.
func (nm *NoteManager) Reminders() []*models.Note {
	var notes []*models.Note
	for n := range Walk(nm.root) {
		if n.HasReminder() {
			notes = append(notes, n)
		}
	}
	slices.SortStableFunc(notes, func(a, b *models.Note) int {
		return cmp.Compare(a.Reminder().UnixNano(), b.Reminder().UnixNano())
	})
	return notes
}
