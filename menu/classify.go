package menu

import (
	"github.com/VicJoao/CardapioRU/models"
)

// Classifier assigns today's menu rows to meal slots by position: the first
// qualifying row in document order is breakfast, the second lunch, the third
// dinner. The document never labels rows with a meal name, so row order is
// the only signal available.
type Classifier struct {
	count  int
	result models.MealsResult
}

func NewClassifier() *Classifier {
	return &Classifier{result: models.NewEmptyMealsResult()}
}

// Take consumes one qualifying row in document order. Rows past the third
// are silently dropped: the menu has exactly three meals per day.
func (c *Classifier) Take(row []models.Cell) {
	c.count++
	if c.count > len(models.Categories) {
		return
	}
	category := models.Categories[c.count-1]
	c.result.Append(category, recordFields(row))
}

// Result returns the accumulated meals mapping.
func (c *Classifier) Result() models.MealsResult {
	return c.result
}

// recordFields renders every column after the leading date column.
func recordFields(row []models.Cell) models.MealRecord {
	fields := make(models.MealRecord, 0, len(row)-1)
	for _, cell := range row[1:] {
		fields = append(fields, cell.Value())
	}
	return fields
}
