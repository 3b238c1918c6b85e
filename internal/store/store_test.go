package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/store"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "timesheet.json")
}

func TestLoadMissingFile(t *testing.T) {
	doc := store.Load(testPath(t))
	assert.NotNil(t, doc.Entries)
	assert.Empty(t, doc.Entries)
}

func TestLoadCorruptFile(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{bad json"), 0o600))

	doc := store.Load(path)
	assert.Empty(t, doc.Entries, "corrupt document must degrade to empty")

	// The bad data is kept under a .corrupt name for inspection.
	_, err := os.Stat(path + ".corrupt")
	assert.NoError(t, err, "expected corrupt file backup")
}

func TestLoadMissingEntriesSequence(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"something":"else"}`), 0o600))

	doc := store.Load(path)
	assert.NotNil(t, doc.Entries)
	assert.Empty(t, doc.Entries)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := testPath(t)

	doc := model.EmptyDocument()
	doc, err := store.Add(doc, model.Entry{
		Employee: "Ada",
		Day:      "Monday",
		TimeIn:   "09:00",
		TimeOut:  "17:00",
		Notes:    "pairing",
	})
	require.NoError(t, err)
	doc, err = store.Add(doc, model.Entry{
		Employee: "Grace",
		Day:      "Friday",
		TimeIn:   "23:00",
		TimeOut:  "01:00",
	})
	require.NoError(t, err)

	require.NoError(t, store.Save(path, doc))
	loaded := store.Load(path)

	assert.Equal(t, doc, loaded)
}

func TestSaveReplacesPriorSnapshot(t *testing.T) {
	path := testPath(t)

	doc := model.EmptyDocument()
	doc, err := store.Add(doc, model.Entry{Employee: "Ada", Day: "Monday", TimeIn: "09:00", TimeOut: "17:00"})
	require.NoError(t, err)
	require.NoError(t, store.Save(path, doc))

	require.NoError(t, store.Save(path, store.Clear()))
	assert.Empty(t, store.Load(path).Entries)
}
