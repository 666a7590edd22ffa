package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CellKind discriminates the three value shapes the extraction engine produces.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a single extracted table cell: text, number or empty.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell builds a textual cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds a numeric cell.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

// Value renders the cell for output. Empty cells render as "N/A".
func (c Cell) Value() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return "N/A"
	}
}

// MarshalJSON encodes text as a JSON string, numbers as JSON numbers and
// empty cells as null, matching the extraction engine's wire shape.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellText:
		return json.Marshal(c.Text)
	case CellNumber:
		return json.Marshal(c.Number)
	default:
		return []byte("null"), nil
	}
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		*c = TextCell(val)
	case float64:
		*c = NumberCell(val)
	case nil:
		*c = Cell{}
	default:
		return fmt.Errorf("unsupported cell value of type %T", v)
	}
	return nil
}

// RawTable is one table chunk as produced by the extraction engine for a
// page or table region: an ordered header row plus ordered data rows.
// Header labels may contain duplicates or blanks.
type RawTable struct {
	Header []string `json:"header"`
	Rows   [][]Cell `json:"rows"`
}
