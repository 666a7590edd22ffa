package menu

import (
	"log"
	"time"

	"github.com/VicJoao/CardapioRU/extractor"
	"github.com/VicJoao/CardapioRU/models"
)

// Pipeline turns the extraction engine's raw per-page tables into the day's
// MealsResult. Any failure inside a run degrades to an empty result; callers
// treat an empty result as the uniform no-data signal.
type Pipeline struct {
	extractor extractor.TableExtractor
}

func NewPipeline(ex extractor.TableExtractor) *Pipeline {
	return &Pipeline{extractor: ex}
}

// Process extracts the document at pdfPath and reconciles its tables into
// the meals for the given day.
func (p *Pipeline) Process(pdfPath string, now time.Time) (result models.MealsResult) {
	result = models.NewEmptyMealsResult()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Pipeline] Recovered while processing %s: %v", pdfPath, r)
			result = models.NewEmptyMealsResult()
		}
	}()

	chunks, err := p.extractor.ExtractTables(pdfPath)
	if err != nil {
		log.Printf("[Pipeline] Failed to extract tables from %s: %v", pdfPath, err)
		return models.NewEmptyMealsResult()
	}

	segmenter := NewSegmenter()
	for _, chunk := range chunks {
		segmenter.Feed(NormalizeTable(chunk))
	}

	classifier := NewClassifier()
	for _, table := range segmenter.Finish() {
		for _, row := range table.Rows {
			if len(row) == 0 {
				continue
			}
			token := row[0].Value()
			if !IsValidDate(token) {
				continue
			}
			if !IsToday(token, now) {
				continue
			}
			classifier.Take(row)
		}
	}

	return classifier.Result()
}
