package content

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bloomcart/storeseed/internal/report"
	"github.com/spf13/afero"
)

const (
	// DefaultDir is where the storefront reads product descriptions from.
	DefaultDir = "data/descriptions"
	// DefaultExt is the extension of every emitted file.
	DefaultExt = "md"

	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

type options struct {
	ext     string
	printer *report.Printer
	logger  *slog.Logger
}

// Option configures Emit.
type Option func(*options)

// WithExt sets the output file extension, with or without the leading dot.
func WithExt(ext string) Option {
	return func(o *options) { o.ext = strings.TrimPrefix(ext, ".") }
}

// WithPrinter sets where progress lines go. The default discards them.
func WithPrinter(p *report.Printer) Option {
	return func(o *options) { o.printer = p }
}

// WithLogger sets the diagnostic logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Emit ensures dir exists and writes every record to dir/<id>.<ext>,
// replacing whatever was there. If dir cannot be created nothing is written.
// A failed record write is reported and the remaining records are still
// written.
func Emit(fsys afero.Fs, dir string, records []Record, opts ...Option) *report.Report {
	o := options{ext: DefaultExt, printer: report.Discard(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &report.Report{}
	record := func(out report.Outcome) {
		r.Add(out)
		o.printer.Outcome(out)
		if out.Status == report.StatusFailed {
			o.logger.Warn("emit item failed", "path", out.Path, "error", out.Err)
		}
	}

	dirOut := ensureDir(fsys, dir)
	record(dirOut)
	if dirOut.Status == report.StatusFailed {
		return r
	}

	for _, rec := range records {
		record(writeRecord(fsys, dir, o.ext, rec))
	}

	o.logger.Debug("emit finished", "dir", dir, "written", r.Written(), "failed", r.Failed())
	return r
}

func ensureDir(fsys afero.Fs, dir string) report.Outcome {
	out := report.Outcome{Kind: report.KindDir, Path: filepath.ToSlash(dir)}

	if info, err := fsys.Stat(dir); err == nil && info.IsDir() {
		out.Status = report.StatusSkipped
		return out
	}
	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		out.Status = report.StatusFailed
		out.Err = fmt.Errorf("creating directory %s: %w", dir, err)
		return out
	}
	out.Status = report.StatusCreated
	return out
}

func writeRecord(fsys afero.Fs, dir, ext string, rec Record) report.Outcome {
	name := rec.ID
	if ext != "" {
		name += "." + ext
	}
	rel := path.Join(filepath.ToSlash(dir), name)
	out := report.Outcome{Kind: report.KindFile, Path: rel}

	if rec.ID == "" || strings.ContainsAny(rec.ID, `/\`) {
		out.Status = report.StatusFailed
		out.Err = fmt.Errorf("writing %s: record id %q is not a bare file name", rel, rec.ID)
		return out
	}

	if err := afero.WriteFile(fsys, filepath.Join(dir, name), []byte(rec.Text), filePerm); err != nil {
		out.Status = report.StatusFailed
		out.Err = fmt.Errorf("writing %s: %w", rel, err)
		return out
	}
	out.Status = report.StatusWritten
	return out
}
