package extractor

import (
	"fmt"

	"github.com/VicJoao/CardapioRU/models"
	"github.com/VicJoao/CardapioRU/util"
)

// TableExtractorMock serves extraction output from a JSON fixture instead
// of running a real backend. Used in non-prod environments and tests.
type TableExtractorMock struct {
	FixturePath string
}

// NewTableExtractorMock creates a mock extractor backed by the fixture file.
func NewTableExtractorMock(fixturePath string) *TableExtractorMock {
	return &TableExtractorMock{FixturePath: fixturePath}
}

// ExtractTables ignores pdfPath and returns the fixture's tables.
func (m *TableExtractorMock) ExtractTables(pdfPath string) ([]models.RawTable, error) {
	tables, err := util.ReadRawTablesFromJSON(m.FixturePath)
	if err != nil {
		fmt.Println("Could not read raw tables fixture from json")
		return nil, err
	}
	return tables, nil
}
