package extractor

import (
	"github.com/VicJoao/CardapioRU/models"
)

// TableExtractor produces the raw per-page table chunks of a document.
// The pipeline treats implementations as opaque: it only relies on the
// RawTable shape, not on any particular extraction backend.
type TableExtractor interface {
	ExtractTables(pdfPath string) ([]models.RawTable, error)
}
