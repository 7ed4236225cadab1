// Package cli provides the menu-driven console interface of Notescape.
// This file contains handlers for note-related commands.
package cli

import (
	"fmt"
	"slices"
	"strings"

	"notescape/local-app/internal/data"
	"notescape/local-app/internal/log"
	"notescape/local-app/internal/storage"
)

// NoteCreate collects the fields of a new note and adds it under parentTitle
// (the root when empty).
func (c *CLI) NoteCreate(parentTitle string) error {
	title, err := c.ask("Enter the title of the note:")
	if err != nil {
		return err
	}
	if _, err := c.Notes.NoteFind(title); err == nil {
		return fmt.Errorf("%w: %q", data.ErrDuplicateTitle, title)
	}

	content, err := c.ask("Enter the content of the note:")
	if err != nil {
		return err
	}

	var imagePath string
	addImage, err := c.ask("Do you want to add an image? (y/n):")
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(addImage), "y") {
		imagePath, err = c.ask("Enter the image path (jpg, jpeg, png, gif; empty to skip):")
		if err != nil {
			return err
		}
	}

	reminder, err := c.ask("Enter the reminder date and time (yyyy-MM-dd HH:mm):")
	if err != nil {
		return err
	}

	res, err := c.Notes.NoteCreate(parentTitle, data.NoteInput{
		Title:     title,
		Content:   content,
		ImagePath: imagePath,
		Reminder:  reminder,
	})
	if err != nil {
		return err
	}

	if res.ImageErr != nil {
		c.Logger.LogError(res.ImageErr, nil)
		c.UI.Warning("Invalid image file. Note created without an image.")
	}
	if res.ReminderErr != nil {
		c.Logger.LogError(res.ReminderErr, nil)
		c.UI.Warning("Invalid date format. Note created without a reminder.")
	}
	c.UI.Success("Note created successfully!")
	return nil
}

// NoteCreateSub asks for an existing note and creates a new note beneath it.
func (c *CLI) NoteCreateSub() error {
	c.UI.NoteUI.Tree(c.Notes.Render())

	parentTitle, err := c.ask("Enter the title of the parent note:")
	if err != nil {
		return err
	}
	if parentTitle == "" {
		return fmt.Errorf("%w: %q", data.ErrNoteNotFound, parentTitle)
	}
	if _, err := c.Notes.NoteFind(parentTitle); err != nil {
		return err
	}

	return c.NoteCreate(parentTitle)
}

// NoteEdit overwrites the title, content and optionally the reminder of a note.
func (c *CLI) NoteEdit() error {
	c.UI.NoteUI.Tree(c.Notes.Render())

	title, err := c.ask("Enter the title of the note to edit:")
	if err != nil {
		return err
	}
	if _, err := c.Notes.NoteFind(title); err != nil {
		return err
	}

	newTitle, err := c.ask("Enter the new title of the note:")
	if err != nil {
		return err
	}
	newContent, err := c.ask("Enter the new content of the note:")
	if err != nil {
		return err
	}
	reminder, err := c.ask("Enter the new reminder date and time (yyyy-MM-dd HH:mm):")
	if err != nil {
		return err
	}

	res, err := c.Notes.NoteEdit(title, data.EditInput{
		Title:    newTitle,
		Content:  newContent,
		Reminder: reminder,
	})
	if err != nil {
		return err
	}

	if res.ReminderErr != nil {
		c.Logger.LogError(res.ReminderErr, nil)
		c.UI.Warning("Invalid date format. Reminder left unchanged.")
	}
	c.UI.Success("Note edited successfully!")
	return nil
}

// NoteDelete removes a note and everything beneath it.
func (c *CLI) NoteDelete() error {
	c.UI.NoteUI.Tree(c.Notes.Render())

	title, err := c.ask("Enter the title of the note to delete:")
	if err != nil {
		return err
	}
	if err := c.Notes.NoteDelete(title); err != nil {
		return err
	}

	c.UI.Success("Note deleted successfully!")
	return nil
}

// NoteDisplay prints the whole tree.
func (c *CLI) NoteDisplay() error {
	c.UI.NoteUI.Tree(c.Notes.Render())
	return nil
}

// NoteShow prints every field of one note.
func (c *CLI) NoteShow() error {
	c.UI.NoteUI.Tree(c.Notes.Render())

	title, err := c.ask("Enter the title of the note to show:")
	if err != nil {
		return err
	}
	note, err := c.Notes.NoteFind(title)
	if err != nil {
		return err
	}

	c.UI.NoteUI.NoteInfo(note)
	return nil
}

// NoteReminders lists every reminder, earliest first.
func (c *CLI) NoteReminders() error {
	c.UI.NoteUI.Reminders(c.Notes.Reminders(), c.now())
	return nil
}

// NoteExport writes a snapshot of the tree to a file.
func (c *CLI) NoteExport() error {
	format, err := c.ask(fmt.Sprintf("Enter the export format (%s) [%s]:", strings.Join(storage.Formats, "/"), storage.FormatJSON))
	if err != nil {
		return err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = storage.FormatJSON
	}
	if !slices.Contains(storage.Formats, format) {
		return fmt.Errorf("unsupported format: %s", format)
	}

	defaultFile := storage.DefaultFilename(c.Config.ExportDir, format)
	filename, err := c.ask(fmt.Sprintf("Enter the file path [%s]:", defaultFile))
	if err != nil {
		return err
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = defaultFile
	}

	if err := storage.Export(c.Notes.Root(), filename, format); err != nil {
		return fmt.Errorf("failed to export notes: %w", err)
	}

	c.Logger.Info("notes exported", log.Fields{"file": filename, "format": format, "notes": c.Notes.Count()})
	c.UI.Success(fmt.Sprintf("Exported %d notes to %s", c.Notes.Count(), filename))
	return nil
}
