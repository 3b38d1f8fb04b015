// Package store keeps the prescription rows entered during the session.
package store

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/rx-tui/rx-tui/internal/prescription"
)

// Headers are the results grid column titles, in display order.
var Headers = []string{"Medication", "Dosage", "Unit", "Frequency", "BodyPart"}

// Store is an append-only, insertion-ordered list of rows. It is owned by
// the UI loop and is not safe for concurrent use.
type Store struct {
	rows      []prescription.Row
	callbacks []func(prescription.Row)
}

func New() *Store {
	return &Store{}
}

// OnAdd registers a callback run after every Add.
func (s *Store) OnAdd(callback func(prescription.Row)) {
	s.callbacks = append(s.callbacks, callback)
}

func (s *Store) Add(row prescription.Row) {
	s.rows = append(s.rows, row)
	for _, callback := range s.callbacks {
		callback(row)
	}
}

func (s *Store) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the rows in insertion order.
func (s *Store) Rows() []prescription.Row {
	out := make([]prescription.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Columns sizes the five grid columns to share width evenly.
func Columns(width int) []table.Column {
	colWidth := width / len(Headers)
	if colWidth < 10 {
		colWidth = 10
	}
	columns := make([]table.Column, 0, len(Headers))
	for _, h := range Headers {
		columns = append(columns, table.Column{Title: h, Width: colWidth})
	}
	return columns
}

// TableRows mirrors the store into grid rows.
func (s *Store) TableRows() []table.Row {
	rows := make([]table.Row, 0, len(s.rows))
	for _, r := range s.rows {
		rows = append(rows, table.Row(r.Values()))
	}
	return rows
}
