// Package scaffold creates the directory tree and placeholder files described
// by a manifest. Creation is write-once: existing directories and files are
// reported as skipped and never modified, so the scaffold can be re-run at any
// time without losing work. A failure on one directory or file is reported and
// the run continues with the next item.
package scaffold
