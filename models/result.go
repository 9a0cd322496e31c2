package models

import (
	"strings"
	"time"
)

type (
	// Row and Header are attributes of a normalized Result.
	// Every cell is already in its canonical comparison form.
	Row    []string
	Header []string
)

type (
	// Meta holds metadata of one query invocation
	Meta struct {
		// engine the query ran against
		Engine string
		// actual query which gave the result
		Query string
		// timestamp of the executed query
		Timestamp time.Time
	}

	// Result is the normalized form of one query's output, as handed
	// to the comparison harness
	Result struct {
		Header Header
		Types  []ColumnType
		Rows   []Row
		Meta   Meta
	}
)

// StatementComplete reports whether the query produced no resultset at
// all (e.g. DDL), as opposed to a resultset with zero rows.
func (r *Result) StatementComplete() bool {
	return len(r.Types) == 0 && len(r.Rows) == 0
}

// TypeTags returns the column categories as the compact tag string
// persisted in expectation files, e.g. "ITR".
func (r *Result) TypeTags() string {
	var b strings.Builder
	for _, t := range r.Types {
		b.WriteRune(t.Char())
	}
	return b.String()
}
