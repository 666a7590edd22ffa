package models

// Meal category names, in the order they occur in the menu document.
const (
	CATEGORY_BREAKFAST = "Café da Manhã"
	CATEGORY_LUNCH     = "Almoço"
	CATEGORY_DINNER    = "Jantar"
)

// Categories lists the meal categories in document order.
var Categories = []string{CATEGORY_BREAKFAST, CATEGORY_LUNCH, CATEGORY_DINNER}

// MealRecord holds the non-date field values of one menu row.
type MealRecord []string

// MealsResult maps each meal category to its records for the day.
// All three category keys are always present.
type MealsResult map[string][]MealRecord

// NewEmptyMealsResult builds a result with all three categories present and
// empty. This is also the uniform failure shape of the extraction pipeline.
func NewEmptyMealsResult() MealsResult {
	result := make(MealsResult, len(Categories))
	for _, category := range Categories {
		result[category] = make([]MealRecord, 0)
	}
	return result
}

// Append adds a record to the given category, preserving insertion order.
func (m MealsResult) Append(category string, record MealRecord) {
	m[category] = append(m[category], record)
}
