package menu

import (
	"fmt"
	"strings"

	"github.com/VicJoao/CardapioRU/models"
)

// CleanCell removes carriage returns and surrounding whitespace from text
// cells. Non-text cells pass through unchanged.
func CleanCell(cell models.Cell) models.Cell {
	if cell.Kind != models.CellText {
		return cell
	}
	cell.Text = strings.TrimSpace(strings.ReplaceAll(cell.Text, "\r", ""))
	return cell
}

// cleanLabel applies the same normalization to a header label.
func cleanLabel(label string) string {
	return strings.TrimSpace(strings.ReplaceAll(label, "\r", ""))
}

// MakeUniqueColumns returns a same-length copy of the labels where every
// label is unique: the first occurrence keeps the original label, later
// occurrences get an "_<n>" suffix counting from 1. Column order is kept.
func MakeUniqueColumns(labels []string) []string {
	seen := make(map[string]int, len(labels))
	unique := make([]string, len(labels))
	for i, label := range labels {
		n := seen[label]
		if n == 0 {
			unique[i] = label
		} else {
			unique[i] = fmt.Sprintf("%s_%d", label, n)
		}
		seen[label] = n + 1
	}
	return unique
}

// NormalizeTable cleans every cell and header label of a chunk and makes
// its header labels unique.
func NormalizeTable(table models.RawTable) models.RawTable {
	header := make([]string, len(table.Header))
	for i, label := range table.Header {
		header[i] = cleanLabel(label)
	}

	rows := make([][]models.Cell, len(table.Rows))
	for i, row := range table.Rows {
		cleaned := make([]models.Cell, len(row))
		for j, cell := range row {
			cleaned[j] = CleanCell(cell)
		}
		rows[i] = cleaned
	}

	return models.RawTable{Header: MakeUniqueColumns(header), Rows: rows}
}
