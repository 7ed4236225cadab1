// Package storage provides functionality for writing snapshots of the note tree to files.
// This file handles the JSON and XML exports.
package storage

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"notescape/local-app/internal/models"
)

// Supported export formats.
const (
	FormatJSON   = "json"
	FormatXML    = "xml"
	FormatSQLite = "sqlite"
)

// Formats lists every accepted export format.
var Formats = []string{FormatJSON, FormatXML, FormatSQLite}

// ExportableNote mirrors a note and its subtree for encoding.
type ExportableNote struct {
	XMLName   xml.Name          `json:"-" xml:"note"`
	Title     string            `json:"title" xml:"title,attr"`
	Content   string            `json:"content,omitempty" xml:"content,omitempty"`
	Reminder  *time.Time        `json:"reminder,omitempty" xml:"reminder,omitempty"`
	ImagePath string            `json:"image_path,omitempty" xml:"image_path,omitempty"`
	Children  []*ExportableNote `json:"children,omitempty" xml:"note"`
}

// ExportableTree is the top-level document of a JSON or XML export.
type ExportableTree struct {
	XMLName    xml.Name        `json:"-" xml:"notes"`
	ExportedAt time.Time       `json:"exported_at" xml:"exported_at,attr"`
	Root       *ExportableNote `json:"root" xml:"note"`
}

// ToExportable converts the subtree rooted at n.
func ToExportable(n *models.Note) *ExportableNote {
	en := &ExportableNote{
		Title:     n.Title(),
		Content:   n.Content(),
		Reminder:  n.Reminder(),
		ImagePath: n.ImagePath(),
	}
	for _, child := range n.Children() {
		en.Children = append(en.Children, ToExportable(child))
	}
	return en
}

// DefaultFilename is the file an export goes to when the user gives none.
func DefaultFilename(dir, format string) string {
	ext := format
	if format == FormatSQLite {
		ext = "db"
	}
	return filepath.Join(dir, "notes."+ext)
}

// Export writes the tree rooted at root to filename in the given format.
func Export(root *models.Note, filename, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == FormatSQLite {
		return SQLiteExport(root, filename)
	}
	return FileExport(root, filename, format)
}

// FileExport exports the tree to a file in the specified format (JSON or XML).
func FileExport(root *models.Note, filename, format string) error {
	tree := &ExportableTree{
		ExportedAt: time.Now().Truncate(time.Second),
		Root:       ToExportable(root),
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(tree, "", "  ")
	case FormatXML:
		data, err = xml.MarshalIndent(tree, "", "  ")
		if err == nil {
			data = append([]byte(xml.Header), data...)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := ensureDir(filename); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory '%s': %w", dir, err)
	}
	return nil
}
