// Package report collects per-item results of a scaffold or emit run and
// prints them as human-readable progress lines.
package report

import "errors"

// Kind distinguishes directory outcomes from file outcomes.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

// Status is the result of processing one directory or file.
type Status int

const (
	// StatusCreated means the item was absent and has been created.
	StatusCreated Status = iota
	// StatusSkipped means the item already existed and was left untouched.
	StatusSkipped
	// StatusWritten means the file was written unconditionally (overwrite).
	StatusWritten
	// StatusFailed means the operation failed; Err holds the cause.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	case StatusWritten:
		return "written"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result for a single path.
type Outcome struct {
	Kind   Kind
	Path   string
	Status Status
	Err    error
}

// Report is the ordered list of outcomes for one run.
type Report struct {
	Outcomes []Outcome
}

// Add appends an outcome.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r *Report) count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Created returns the number of items created.
func (r *Report) Created() int { return r.count(StatusCreated) }

// Skipped returns the number of items left untouched.
func (r *Report) Skipped() int { return r.count(StatusSkipped) }

// Written returns the number of files overwritten or freshly written.
func (r *Report) Written() int { return r.count(StatusWritten) }

// Failed returns the number of failed items.
func (r *Report) Failed() int { return r.count(StatusFailed) }

// OK reports whether no item failed.
func (r *Report) OK() bool { return r.Failed() == 0 }

// Err joins every failure cause, or returns nil when the run was clean.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed && o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
