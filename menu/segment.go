package menu

import (
	"regexp"

	"github.com/VicJoao/CardapioRU/models"
)

// sectionTitleRe matches the page titles that open a new meal-section
// table, e.g. "CARDÁPIO DE MAIO 2024 – UFV FLORESTAL – ALMOÇO".
var sectionTitleRe = regexp.MustCompile(`^CARDÁPIO.*(ALMOÇO|JANTAR|DESJEJUM)$`)

// IsSectionTitle reports whether the text marks the start of a new
// meal-section table.
func IsSectionTitle(text string) bool {
	return sectionTitleRe.MatchString(text)
}

// LogicalTable is one reconciled table, stitched together from one or more
// extracted chunks.
type LogicalTable struct {
	Title  string
	Header []string
	Rows   [][]models.Cell
}

// Segmenter reassembles logical tables from the per-page chunks the
// extraction engine produces. A chunk whose leading text is a section title
// starts a new logical table; any other chunk continues the open one.
type Segmenter struct {
	tables  []LogicalTable
	current *LogicalTable
}

func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Feed consumes one normalized chunk in document order.
func (s *Segmenter) Feed(chunk models.RawTable) {
	if len(chunk.Header) == 0 && len(chunk.Rows) == 0 {
		return
	}

	leading := ""
	if len(chunk.Header) > 0 {
		leading = chunk.Header[0]
	}

	if IsSectionTitle(leading) {
		s.finalizeCurrent()
		s.current = openSectionTable(leading, chunk)
		return
	}

	if s.current == nil {
		// No section title seen yet: root the logical table at the first
		// chunk's own header.
		s.current = &LogicalTable{Header: chunk.Header}
	}
	s.appendRows(chunk.Rows)
}

// Finish finalizes the still-open logical table and returns all logical
// tables in document order.
func (s *Segmenter) Finish() []LogicalTable {
	s.finalizeCurrent()
	return s.tables
}

func (s *Segmenter) finalizeCurrent() {
	if s.current != nil {
		s.tables = append(s.tables, *s.current)
		s.current = nil
	}
}

// appendRows continues the open table. Rows that cannot be aligned to the
// open table's column count are dropped.
func (s *Segmenter) appendRows(rows [][]models.Cell) {
	for _, row := range rows {
		if len(row) != len(s.current.Header) {
			continue
		}
		s.current.Rows = append(s.current.Rows, row)
	}
}

// openSectionTable starts a logical table from a titled chunk: the chunk's
// first row becomes the header and the remaining rows its data.
func openSectionTable(title string, chunk models.RawTable) *LogicalTable {
	table := &LogicalTable{Title: title}
	if len(chunk.Rows) == 0 {
		return table
	}

	labels := make([]string, len(chunk.Rows[0]))
	for i, cell := range chunk.Rows[0] {
		labels[i] = headerLabel(cell)
	}
	table.Header = MakeUniqueColumns(labels)

	for _, row := range chunk.Rows[1:] {
		if len(row) != len(table.Header) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// headerLabel renders a cell as a column label; empty cells become blank
// labels so the deduplicator can still make them unique.
func headerLabel(cell models.Cell) string {
	if cell.Kind == models.CellEmpty {
		return ""
	}
	return cell.Value()
}
