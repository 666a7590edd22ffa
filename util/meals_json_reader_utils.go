package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/VicJoao/CardapioRU/models"
)

// ReadMealsResultFromJSON loads a MealsResult from JSON on disk.
func ReadMealsResultFromJSON(filePath string) (models.MealsResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var meals models.MealsResult
	if err := json.Unmarshal(data, &meals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal MealsResult: %w", err)
	}
	return meals, nil
}

// ReadRawTablesFromJSON loads extraction engine output from JSON on disk.
func ReadRawTablesFromJSON(filePath string) ([]models.RawTable, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var tables []models.RawTable
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw tables: %w", err)
	}
	return tables, nil
}

// MarshalMealsResult serializes a MealsResult the way the cache file stores
// it: UTF-8 with non-ASCII preserved and stable two-space indentation.
func MarshalMealsResult(meals models.MealsResult) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meals); err != nil {
		return nil, fmt.Errorf("failed to marshal MealsResult: %w", err)
	}
	return buf.Bytes(), nil
}
