package storage

import (
	"database/sql"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notescape/local-app/internal/models"
)

func sampleTree() *models.Note {
	root := models.NewRoot()
	work := models.CreateChild(root, "Work")
	work.SetContent("office things")
	reports := models.CreateChild(work, "Reports")
	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	reports.SetReminder(&due)
	pic := models.CreateChild(root, "Holiday")
	pic.SetImagePath("/pics/beach.jpg")
	return root
}

func TestFileExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "notes.json")
	require.NoError(t, Export(sampleTree(), path, "JSON"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var tree ExportableTree
	require.NoError(t, json.Unmarshal(raw, &tree))
	require.NotNil(t, tree.Root)
	assert.Equal(t, "Root", tree.Root.Title)
	require.Len(t, tree.Root.Children, 2)

	work := tree.Root.Children[0]
	assert.Equal(t, "Work", work.Title)
	assert.Equal(t, "office things", work.Content)
	require.Len(t, work.Children, 1)
	require.NotNil(t, work.Children[0].Reminder)
	assert.True(t, work.Children[0].Reminder.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))

	assert.Equal(t, "/pics/beach.jpg", tree.Root.Children[1].ImagePath)
	assert.Nil(t, tree.Root.Children[1].Reminder)
}

func TestFileExportXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xml")
	require.NoError(t, Export(sampleTree(), path, FormatXML))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var tree ExportableTree
	require.NoError(t, xml.Unmarshal(raw, &tree))
	require.NotNil(t, tree.Root)
	assert.Equal(t, "Root", tree.Root.Title)
	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "Reports", tree.Root.Children[0].Children[0].Title)
}

func TestFileExportUnsupportedFormat(t *testing.T) {
	err := Export(sampleTree(), filepath.Join(t.TempDir(), "notes.csv"), "csv")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestSQLiteExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	require.NoError(t, Export(sampleTree(), path, FormatSQLite))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT id, parent_id, position, title, reminder, image_path FROM notes ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		id        int64
		parentID  sql.NullInt64
		position  int
		title     string
		reminder  sql.NullString
		imagePath sql.NullString
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.id, &r.parentID, &r.position, &r.title, &r.reminder, &r.imagePath))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 4)

	assert.Equal(t, "Root", got[0].title)
	assert.False(t, got[0].parentID.Valid)

	assert.Equal(t, "Work", got[1].title)
	assert.Equal(t, int64(0), got[1].parentID.Int64)
	assert.Equal(t, 0, got[1].position)

	assert.Equal(t, "Reports", got[2].title)
	assert.Equal(t, int64(1), got[2].parentID.Int64)
	assert.Equal(t, "2024-03-01 09:30", got[2].reminder.String)

	assert.Equal(t, "Holiday", got[3].title)
	assert.Equal(t, 1, got[3].position)
	assert.Equal(t, "/pics/beach.jpg", got[3].imagePath.String)
	assert.False(t, got[3].reminder.Valid)
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "notes.json"), DefaultFilename("out", FormatJSON))
	assert.Equal(t, filepath.Join("out", "notes.db"), DefaultFilename("out", FormatSQLite))
}
