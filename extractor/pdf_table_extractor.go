package extractor

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/VicJoao/CardapioRU/models"
)

// PDFTableExtractor recovers lattice-style tables from a PDF by grouping
// positioned text into rows (by Y, within a tolerance) and splitting rows
// into cells wherever a horizontal gap exceeds the cell gap.
type PDFTableExtractor struct {
	RowTolerance float64 // Y distance grouping text into the same row, in points
	CellGap      float64 // X gap splitting a row into separate cells, in points
}

// NewPDFTableExtractor creates an extractor with defaults that match the
// menu PDF's table geometry.
func NewPDFTableExtractor() *PDFTableExtractor {
	return &PDFTableExtractor{
		RowTolerance: 3.0,
		CellGap:      12.0,
	}
}

// ExtractTables returns one RawTable per non-empty page, in page order.
func (e *PDFTableExtractor) ExtractTables(pdfPath string) ([]models.RawTable, error) {
	if err := validatePDF(pdfPath); err != nil {
		return nil, err
	}

	file, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %q: %w", pdfPath, err)
	}
	defer file.Close()

	var tables []models.RawTable
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		grid := e.pageGrid(page.Content().Text)
		if len(grid) == 0 {
			continue
		}
		tables = append(tables, gridToRawTable(grid))
	}
	return tables, nil
}

// validatePDF rejects corrupt or empty downloads before extraction starts.
func validatePDF(pdfPath string) error {
	file, err := os.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to open pdf %q: %w", pdfPath, err)
	}
	defer file.Close()

	pages, err := pdfcpu.PageCount(file, nil)
	if err != nil {
		return fmt.Errorf("invalid pdf %q: %w", pdfPath, err)
	}
	if pages == 0 {
		return fmt.Errorf("pdf %q has no pages", pdfPath)
	}
	return nil
}

// pageGrid groups a page's positioned text into a row/cell grid.
func (e *PDFTableExtractor) pageGrid(texts []pdf.Text) [][]models.Cell {
	rows := groupRows(texts, e.RowTolerance)

	grid := make([][]models.Cell, 0, len(rows))
	for _, row := range rows {
		cells := e.rowCells(row)
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}

// groupRows buckets text items into rows by Y coordinate, top of the page
// first. PDF Y grows upward.
func groupRows(texts []pdf.Text, tolerance float64) [][]pdf.Text {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdf.Text
	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			if last[0].Y-t.Y <= tolerance {
				rows[len(rows)-1] = append(last, t)
				continue
			}
		}
		rows = append(rows, []pdf.Text{t})
	}

	// Re-sort each row left to right; items within a row share Y only
	// approximately.
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// rowCells splits one row of text items into cells on horizontal gaps.
func (e *PDFTableExtractor) rowCells(row []pdf.Text) []models.Cell {
	var cells []models.Cell
	var current strings.Builder
	var prev *pdf.Text

	flush := func() {
		if current.Len() > 0 {
			cells = append(cells, toCell(current.String()))
			current.Reset()
		}
	}

	for i := range row {
		t := row[i]
		if prev != nil {
			gap := t.X - (prev.X + prev.W)
			switch {
			case gap > e.CellGap:
				flush()
			case gap > 0.3*t.FontSize:
				current.WriteString(" ")
			}
		}
		current.WriteString(t.S)
		prev = &row[i]
	}
	flush()
	return cells
}

// toCell converts the collected text of a cell into its typed form.
func toCell(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.Cell{}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.NumberCell(n)
	}
	return models.TextCell(trimmed)
}

// gridToRawTable turns a page grid into a RawTable: the first row becomes
// the header, the rest the data rows.
func gridToRawTable(grid [][]models.Cell) models.RawTable {
	header := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		if cell.Kind == models.CellEmpty {
			header[i] = ""
		} else {
			header[i] = cell.Value()
		}
	}
	return models.RawTable{Header: header, Rows: grid[1:]}
}
