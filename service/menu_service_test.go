package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/VicJoao/CardapioRU/models"
)

// mockMenuDAO is an in-memory MenuDAO for tests.
type mockMenuDAO struct {
	saved    models.MealsResult
	saveErr  error
	loadErr  error
	loadFrom models.MealsResult
}

func (m *mockMenuDAO) SaveMeals(meals models.MealsResult) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = meals
	return nil
}

func (m *mockMenuDAO) LoadMeals() (models.MealsResult, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loadFrom, nil
}

func TestMenuService_PublishThenGet(t *testing.T) {
	dao := &mockMenuDAO{}
	service := NewMenuService(dao)

	meals := models.NewEmptyMealsResult()
	meals.Append(models.CATEGORY_LUNCH, models.MealRecord{"Feijoada"})
	service.Publish(meals)

	got, err := service.GetCurrentMeals()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, meals) {
		t.Errorf("Expected the published snapshot, got %v", got)
	}
	if !reflect.DeepEqual(dao.saved, meals) {
		t.Errorf("Expected the snapshot persisted through the DAO")
	}
}

func TestMenuService_FallsBackToCache(t *testing.T) {
	cached := models.NewEmptyMealsResult()
	cached.Append(models.CATEGORY_DINNER, models.MealRecord{"Sopa"})
	service := NewMenuService(&mockMenuDAO{loadFrom: cached})

	got, err := service.GetCurrentMeals()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, cached) {
		t.Errorf("Expected the cached snapshot, got %v", got)
	}
}

func TestMenuService_ErrorWhenCacheUnreadable(t *testing.T) {
	service := NewMenuService(&mockMenuDAO{loadErr: errors.New("no cache")})

	if _, err := service.GetCurrentMeals(); err == nil {
		t.Errorf("Expected an error when no snapshot and no cache exist")
	}
}

func TestMenuService_PublishSurvivesPersistFailure(t *testing.T) {
	dao := &mockMenuDAO{saveErr: errors.New("disk full")}
	service := NewMenuService(dao)

	meals := models.NewEmptyMealsResult()
	meals.Append(models.CATEGORY_BREAKFAST, models.MealRecord{"Pão"})
	service.Publish(meals)

	got, err := service.GetCurrentMeals()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, meals) {
		t.Errorf("Expected the in-memory snapshot despite persist failure, got %v", got)
	}
}

func TestMenuService_PublishReplacesSnapshot(t *testing.T) {
	service := NewMenuService(&mockMenuDAO{})

	first := models.NewEmptyMealsResult()
	first.Append(models.CATEGORY_LUNCH, models.MealRecord{"Frango"})
	second := models.NewEmptyMealsResult()
	second.Append(models.CATEGORY_LUNCH, models.MealRecord{"Peixe"})

	service.Publish(first)
	service.Publish(second)

	got, err := service.GetCurrentMeals()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("Expected the latest snapshot, got %v", got)
	}
}
