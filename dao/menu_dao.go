package dao

import (
	"github.com/VicJoao/CardapioRU/models"
)

// MenuDAO persists the published MealsResult snapshot and reads it back
// when no in-memory result is available.
type MenuDAO interface {
	SaveMeals(meals models.MealsResult) error
	LoadMeals() (models.MealsResult, error)
}
