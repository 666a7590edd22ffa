package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/VicJoao/CardapioRU/models"
	"github.com/VicJoao/CardapioRU/service"
)

// MenuHandler serves the meals snapshot over HTTP.
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler constructs a MenuHandler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMeals handles GET /api/meals.
func (h *MenuHandler) GetMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.menuService.GetCurrentMeals()
	if err != nil {
		log.Println("Error loading meals:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(meals); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Health handles GET /health.
func (h *MenuHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.HealthStatus{Status: "healthy"})
}
