package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VicJoao/CardapioRU/models"
	"github.com/VicJoao/CardapioRU/service"
)

type stubMenuDAO struct {
	meals models.MealsResult
	err   error
}

func (s *stubMenuDAO) SaveMeals(meals models.MealsResult) error { return nil }

func (s *stubMenuDAO) LoadMeals() (models.MealsResult, error) {
	return s.meals, s.err
}

func TestGetMeals_Success(t *testing.T) {
	meals := models.NewEmptyMealsResult()
	meals.Append(models.CATEGORY_LUNCH, models.MealRecord{"Feijão tropeiro", "Couve"})
	handler := NewMenuHandler(service.NewMenuService(&stubMenuDAO{meals: meals}))

	req := httptest.NewRequest("GET", "/api/meals", nil)
	rr := httptest.NewRecorder()

	handler.GetMeals(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var decoded map[string][][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("Expected valid JSON body, got %v", err)
	}
	if len(decoded) != 3 {
		t.Errorf("Expected three category keys, got %d", len(decoded))
	}
	if !strings.Contains(rr.Body.String(), "Café da Manhã") {
		t.Errorf("Expected literal UTF-8 category key in response body")
	}
	if decoded[models.CATEGORY_LUNCH][0][0] != "Feijão tropeiro" {
		t.Errorf("Expected lunch record in response, got %v", decoded[models.CATEGORY_LUNCH])
	}
}

func TestGetMeals_CacheUnreadable(t *testing.T) {
	handler := NewMenuHandler(service.NewMenuService(&stubMenuDAO{err: errors.New("no cache")}))

	req := httptest.NewRequest("GET", "/api/meals", nil)
	rr := httptest.NewRecorder()

	handler.GetMeals(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	handler := NewMenuHandler(service.NewMenuService(&stubMenuDAO{}))

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var status models.HealthStatus
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("Expected valid JSON body, got %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("Expected status %q, got %q", "healthy", status.Status)
	}
}
