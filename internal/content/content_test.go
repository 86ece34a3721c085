package content

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/bloomcart/storeseed/internal/report"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptions(t *testing.T) {
	records, err := Descriptions()
	require.NoError(t, err)
	require.Len(t, records, 16)

	for i, r := range records {
		assert.Equal(t, strings.TrimSpace(r.ID), r.ID)
		assert.Equal(t, i+1, mustAtoi(t, r.ID), "records must be in numeric id order")
		assert.True(t, strings.HasPrefix(r.Text, "# "), "record %s should start with a heading", r.ID)
	}
	assert.Contains(t, records[0].Text, "Areca Catechu Flower")
	assert.Contains(t, records[15].Text, "Rose Water Sprinkler")
}

func TestLoadRecords_OrderAndFiltering(t *testing.T) {
	fsys := fstest.MapFS{
		"d/10.md":      {Data: []byte("ten")},
		"d/2.md":       {Data: []byte("two")},
		"d/1.md":       {Data: []byte("one")},
		"d/extra.md":   {Data: []byte("extra")},
		"d/notes.txt":  {Data: []byte("ignored")},
		"d/sub/3.md":   {Data: []byte("nested")},
		"d/sub/x.json": {Data: []byte("{}")},
	}

	records, err := loadRecords(fsys, "d")
	require.NoError(t, err)

	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "2", "10", "extra"}, ids)
	assert.Equal(t, "ten", records[2].Text)
}

func TestLoadRecords_MissingDir(t *testing.T) {
	_, err := loadRecords(fstest.MapFS{}, "nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEmit_OverwritesOnEveryRun(t *testing.T) {
	fsys := afero.NewMemMapFs()
	target := filepath.Join(DefaultDir, "1.md")

	r := Emit(fsys, DefaultDir, []Record{{ID: "1", Text: "A"}})
	require.True(t, r.OK())
	assert.Equal(t, "A", readFile(t, fsys, target))

	r = Emit(fsys, DefaultDir, []Record{{ID: "1", Text: "B"}})
	require.True(t, r.OK())
	assert.Equal(t, "B", readFile(t, fsys, target))
	assert.Equal(t, 1, r.Written())
}

func TestEmit_ReplacesLongerExistingContent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(DefaultDir, 0755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(DefaultDir, "7.md"), []byte("a much longer hand edit"), 0644))

	Emit(fsys, DefaultDir, []Record{{ID: "7", Text: "short"}})

	assert.Equal(t, "short", readFile(t, fsys, filepath.Join(DefaultDir, "7.md")))
}

func TestEmit_CreatesDirectoryIdempotently(t *testing.T) {
	fsys := afero.NewMemMapFs()

	first := Emit(fsys, DefaultDir, nil)
	assert.Equal(t, report.StatusCreated, first.Outcomes[0].Status)

	second := Emit(fsys, DefaultDir, nil)
	assert.Equal(t, report.StatusSkipped, second.Outcomes[0].Status)
	assert.True(t, second.OK())
}

func TestEmit_BuiltinTable(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "data", "descriptions")
	records, err := Descriptions()
	require.NoError(t, err)

	r := Emit(afero.NewOsFs(), out, records)

	require.True(t, r.OK(), "unexpected failures: %v", r.Err())
	assert.Equal(t, 16, r.Written())
	for _, rec := range records {
		data, err := os.ReadFile(filepath.Join(out, rec.ID+".md"))
		require.NoError(t, err)
		assert.Equal(t, rec.Text, string(data))
	}
}

func TestEmit_CustomExtension(t *testing.T) {
	fsys := afero.NewMemMapFs()

	Emit(fsys, "out", []Record{{ID: "3", Text: "three"}}, WithExt(".markdown"))

	assert.Equal(t, "three", readFile(t, fsys, filepath.Join("out", "3.markdown")))
}

func TestEmit_DirectoryFailureStopsRun(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

	r := Emit(afero.NewOsFs(), filepath.Join(blocker, "descriptions"), []Record{{ID: "1", Text: "A"}})

	require.Len(t, r.Outcomes, 1)
	assert.Equal(t, report.StatusFailed, r.Outcomes[0].Status)
	assert.Zero(t, r.Written())
}

func TestEmit_RecordFailureIsIsolated(t *testing.T) {
	fsys := &failWriteFs{Fs: afero.NewMemMapFs(), fail: filepath.Join("out", "2.md")}
	records := []Record{{ID: "1", Text: "one"}, {ID: "2", Text: "two"}, {ID: "3", Text: "three"}}

	r := Emit(fsys, "out", records)

	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 2, r.Written())
	assert.ErrorIs(t, r.Err(), fs.ErrPermission)
	assert.Equal(t, "one", readFile(t, fsys, filepath.Join("out", "1.md")))
	assert.Equal(t, "three", readFile(t, fsys, filepath.Join("out", "3.md")))
}

func TestEmit_RejectsPathLikeIDs(t *testing.T) {
	fsys := afero.NewMemMapFs()

	r := Emit(fsys, "out", []Record{{ID: "../escape", Text: "x"}, {ID: "ok", Text: "y"}})

	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 1, r.Written())
	exists, err := afero.Exists(fsys, "escape.md")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmit_ProgressLines(t *testing.T) {
	var buf bytes.Buffer
	Emit(afero.NewMemMapFs(), DefaultDir, []Record{{ID: "1", Text: "A"}, {ID: "2", Text: "B"}},
		WithPrinter(report.NewPrinter(&buf, false)))

	want := "[ OK ] Created folder: data/descriptions\n" +
		"  [ UP ] Generated/Updated: data/descriptions/1.md\n" +
		"  [ UP ] Generated/Updated: data/descriptions/2.md\n"
	assert.Equal(t, want, buf.String())
}

func TestCompareIDs(t *testing.T) {
	assert.Negative(t, compareIDs("2", "10"))
	assert.Positive(t, compareIDs("10", "9"))
	assert.Zero(t, compareIDs("4", "4"))
	assert.Negative(t, compareIDs("99", "alpha"))
	assert.Positive(t, compareIDs("beta", "1"))
	assert.Negative(t, compareIDs("alpha", "beta"))
	assert.Positive(t, compareIDs("9223372036854775807", "-1"))
	assert.Negative(t, compareIDs("-9223372036854775808", "1"))
}

// ─── Test Helpers ──────────────────────────────────────────────────

type failWriteFs struct {
	afero.Fs
	fail string
}

func (f *failWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == f.fail && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func readFile(t *testing.T, fsys afero.Fs, p string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, p)
	require.NoError(t, err, "reading %s", p)
	return string(data)
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err, "id %q is not numeric", s)
	return n
}
