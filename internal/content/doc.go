// Package content writes the product description table into a flat output
// directory, one file per product id. Unlike package scaffold, every run
// rewrites every file: the embedded table is the only source of truth and the
// output files are never edited by hand.
package content
