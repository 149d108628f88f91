// Package report writes site analysis results to PDF and Excel files.
package report

import (
	"time"

	"github.com/alexiusacademia/gowind/internal/site"
)

// Meta identifies the project a report belongs to.
type Meta struct {
	Project string
	Author  string
	Date    time.Time
}

func (m Meta) date() string {
	if m.Date.IsZero() {
		return time.Now().Format("2006-01-02")
	}
	return m.Date.Format("2006-01-02")
}

// BatchEntry is the outcome of analysing one row of a batch file.
type BatchEntry struct {
	Line   int
	Name   string
	Result *site.Result
	Err    error
}
