package service

import (
	"log"
	"sync"

	"github.com/VicJoao/CardapioRU/dao"
	"github.com/VicJoao/CardapioRU/models"
)

// MenuService owns the published meals snapshot. The snapshot is replaced
// atomically on refresh, so readers always see either the previous complete
// result or the new complete result.
type MenuService struct {
	menuDao dao.MenuDAO

	mu      sync.RWMutex
	current models.MealsResult
}

// NewMenuService constructs a MenuService with its cache DAO dependency.
func NewMenuService(menuDao dao.MenuDAO) *MenuService {
	return &MenuService{menuDao: menuDao}
}

// Publish replaces the in-memory snapshot and persists it through the DAO.
// A persistence failure is logged, not propagated: the in-memory snapshot
// is already live.
func (s *MenuService) Publish(meals models.MealsResult) {
	s.mu.Lock()
	s.current = meals
	s.mu.Unlock()

	if err := s.menuDao.SaveMeals(meals); err != nil {
		log.Printf("[MenuService] Failed to persist meals snapshot: %v", err)
	}
}

// GetCurrentMeals returns the published snapshot, falling back to the
// persisted cache when no refresh has completed yet. An error is returned
// only when the cache is unreadable too.
func (s *MenuService) GetCurrentMeals() (models.MealsResult, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil {
		return current, nil
	}

	cached, err := s.menuDao.LoadMeals()
	if err != nil {
		return nil, err
	}
	return cached, nil
}
