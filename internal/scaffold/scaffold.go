package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/bloomcart/storeseed/internal/manifest"
	"github.com/bloomcart/storeseed/internal/report"
	"github.com/spf13/afero"
)

// Permissions for created directories and placeholder files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

type options struct {
	printer *report.Printer
	logger  *slog.Logger
}

// Option configures Apply.
type Option func(*options)

// WithPrinter sets where progress lines go. The default discards them.
func WithPrinter(p *report.Printer) Option {
	return func(o *options) { o.printer = p }
}

// WithLogger sets the diagnostic logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Apply walks m in order, creating every missing directory under root and
// every missing file with its initial content. Nothing that already exists is
// touched. Failures are recorded in the returned report; Apply itself never
// aborts early.
func Apply(fsys afero.Fs, root string, m *manifest.Manifest, opts ...Option) *report.Report {
	o := options{printer: report.Discard(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &report.Report{}
	record := func(out report.Outcome) {
		r.Add(out)
		o.printer.Outcome(out)
		if out.Status == report.StatusFailed {
			o.logger.Warn("scaffold item failed", "path", out.Path, "error", out.Err)
		}
	}

	for _, entry := range m.Entries {
		dirOut := ensureDir(fsys, root, entry.Dir)
		record(dirOut)
		if dirOut.Status == report.StatusFailed {
			// Files cannot be placed in a directory that does not exist.
			o.logger.Debug("skipping files of failed directory", "dir", entry.Dir, "files", len(entry.Files))
			continue
		}

		for _, f := range entry.Files {
			record(ensureFile(fsys, root, entry.Dir, f))
		}
	}

	o.logger.Debug("scaffold finished",
		"created", r.Created(), "skipped", r.Skipped(), "failed", r.Failed())
	return r
}

// ensureDir creates root/dir and any missing parents.
func ensureDir(fsys afero.Fs, root, dir string) report.Outcome {
	out := report.Outcome{Kind: report.KindDir, Path: dir}
	full := filepath.Join(root, filepath.FromSlash(dir))

	if info, err := fsys.Stat(full); err == nil && info.IsDir() {
		out.Status = report.StatusSkipped
		return out
	}

	if err := fsys.MkdirAll(full, DirPerm); err != nil {
		out.Status = report.StatusFailed
		out.Err = fmt.Errorf("creating directory %s: %w", dir, err)
		return out
	}
	out.Status = report.StatusCreated
	return out
}

// ensureFile writes content to root/dir/name unless something already exists
// at that path. Existing content is never compared or replaced.
func ensureFile(fsys afero.Fs, root, dir string, f manifest.File) report.Outcome {
	rel := path.Join(dir, f.Name)
	out := report.Outcome{Kind: report.KindFile, Path: rel}
	full := filepath.Join(root, filepath.FromSlash(rel))

	_, err := fsys.Stat(full)
	switch {
	case err == nil:
		out.Status = report.StatusSkipped
		return out
	case !errors.Is(err, fs.ErrNotExist):
		out.Status = report.StatusFailed
		out.Err = fmt.Errorf("checking file %s: %w", rel, err)
		return out
	}

	if err := afero.WriteFile(fsys, full, []byte(f.Content), FilePerm); err != nil {
		out.Status = report.StatusFailed
		out.Err = fmt.Errorf("creating file %s: %w", rel, err)
		return out
	}
	out.Status = report.StatusCreated
	return out
}
