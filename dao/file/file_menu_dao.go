package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VicJoao/CardapioRU/models"
	"github.com/VicJoao/CardapioRU/util"
)

// FileMenuDAO stores the meals snapshot as a JSON file on disk.
type FileMenuDAO struct {
	path string
}

// NewFileMenuDAO initializes a FileMenuDAO writing to the given path.
func NewFileMenuDAO(path string) *FileMenuDAO {
	return &FileMenuDAO{path: path}
}

// SaveMeals writes the snapshot atomically: the JSON goes to a temp file
// that replaces the cache file on success.
func (dao *FileMenuDAO) SaveMeals(meals models.MealsResult) error {
	data, err := util.MarshalMealsResult(meals)
	if err != nil {
		return fmt.Errorf("failed to marshal meals snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dao.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmpPath := dao.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write meals cache: %w", err)
	}
	if err := os.Rename(tmpPath, dao.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace meals cache: %w", err)
	}
	return nil
}

// LoadMeals reads the snapshot back from disk.
func (dao *FileMenuDAO) LoadMeals() (models.MealsResult, error) {
	data, err := os.ReadFile(dao.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read meals cache %q: %w", dao.path, err)
	}
	var meals models.MealsResult
	if err := json.Unmarshal(data, &meals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meals cache: %w", err)
	}
	return meals, nil
}
