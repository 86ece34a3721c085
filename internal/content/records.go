package content

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"
)

//go:embed descriptions/*.md
var descriptionsFS embed.FS

// Record is one product description. ID is used verbatim as the output file's
// base name.
type Record struct {
	ID   string
	Text string
}

var (
	builtin     []Record
	builtinErr  error
	builtinOnce sync.Once
)

// Descriptions returns the embedded product descriptions ordered by numeric
// id. The table is loaded once; callers must not mutate the returned slice.
func Descriptions() ([]Record, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = loadRecords(descriptionsFS, "descriptions")
	})
	return builtin, builtinErr
}

func loadRecords(fsys fs.FS, dir string) ([]Record, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var records []Record
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		records = append(records, Record{
			ID:   strings.TrimSuffix(e.Name(), ".md"),
			Text: string(data),
		})
	}

	slices.SortStableFunc(records, func(a, b Record) int { return compareIDs(a.ID, b.ID) })
	return records, nil
}

// compareIDs orders numeric ids numerically ("2" before "10") and falls back
// to string order otherwise. Numeric ids sort before non-numeric ones.
func compareIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
