package editor

import (
	"mirgo/internal/engine"
	"mirgo/internal/history"
)

type RowKind int

const (
	RowEntry RowKind = iota
	RowHead
	RowNewest
)

const headMarker = "--- Head ---"

// HistoryRow is one line of the history panel.
type HistoryRow struct {
	Kind  RowKind
	Index int                 // entry index for RowEntry
	Text  string
	Inert bool
	Owner engine.ComponentRef // owner of the entry, zero for marker rows
	// Applied is true for entries at or before the head.
	Applied bool
}

// HistoryRows lays out the history log: entries oldest first, a head marker
// after the last applied entry (or first if none is applied) and a final
// "Newest" row.
func HistoryRows(s *history.Stack) []HistoryRow {
	entries := s.Entries()
	applied := s.AppliedCount()
	rows := make([]HistoryRow, 0, len(entries)+2)

	if applied == 0 {
		rows = append(rows, HistoryRow{Kind: RowHead, Text: headMarker})
	}
	for i, a := range entries {
		rows = append(rows, HistoryRow{
			Kind:    RowEntry,
			Index:   i,
			Text:    a.String(),
			Inert:   a.Inert,
			Owner:   a.Owner,
			Applied: i < applied,
		})
		if i == applied-1 {
			rows = append(rows, HistoryRow{Kind: RowHead, Text: headMarker})
		}
	}
	rows = append(rows, HistoryRow{Kind: RowNewest, Text: "Newest"})
	return rows
}

// SelectHistoryRow moves the head for a clicked row. Clicking entry i
// returns to the state just before it was recorded.
func (c *Context) SelectHistoryRow(row HistoryRow) {
	if c.Session.IsCapturing() {
		c.AbandonFieldEdit()
	}
	switch row.Kind {
	case RowEntry:
		if err := c.History.JumpTo(row.Index); err != nil {
			c.logger.Printf("history jump: %v", err)
		}
	case RowNewest:
		c.History.Newest()
	}
}
