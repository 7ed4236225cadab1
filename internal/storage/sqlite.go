package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"notescape/local-app/internal/data"
	"notescape/local-app/internal/models"
)

const schema = `
CREATE TABLE notes (
	id         INTEGER PRIMARY KEY,
	parent_id  INTEGER REFERENCES notes(id),
	position   INTEGER NOT NULL,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	reminder   TEXT,
	image_path TEXT
);
CREATE INDEX idx_notes_parent ON notes(parent_id);
`

// SQLiteExport writes the tree to a fresh SQLite database at filename,
// replacing any existing file. Notes are numbered in pre-order starting at 0
// for the root, whose parent_id is NULL.
func SQLiteExport(root *models.Note, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to replace existing export '%s': %w", filename, err)
	}

	db, err := sql.Open("sqlite3", filename+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create notes table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO notes (id, parent_id, position, title, content, reminder, image_path) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make(map[*models.Note]int64)
	for n := range data.Walk(root) {
		id := int64(len(ids))
		ids[n] = id

		var parentID sql.NullInt64
		position := 0
		if p := n.Parent(); p != nil {
			parentID = sql.NullInt64{Int64: ids[p], Valid: true}
			for i, sibling := range p.Children() {
				if sibling == n {
					position = i
					break
				}
			}
		}

		reminder := sql.NullString{String: data.FormatReminder(n.Reminder()), Valid: n.HasReminder()}
		imagePath := sql.NullString{String: n.ImagePath(), Valid: n.HasImage()}

		if _, err := stmt.Exec(id, parentID, position, n.Title(), n.Content(), reminder, imagePath); err != nil {
			return fmt.Errorf("failed to insert note '%s': %w", n.Title(), err)
		}
	}

	return tx.Commit()
}
