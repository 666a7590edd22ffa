package util

import (
	"os"
	"strings"
	"testing"

	"github.com/VicJoao/CardapioRU/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tempFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadMealsResultFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"Café da Manhã": [["Pão", "Café"]],
		"Almoço": [],
		"Jantar": []
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	meals, err := ReadMealsResultFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(meals[models.CATEGORY_BREAKFAST]) != 1 {
		t.Errorf("Expected one breakfast record, got %d", len(meals[models.CATEGORY_BREAKFAST]))
	}
}

func TestReadMealsResultFromJSON_MalformedJSON(t *testing.T) {
	tempFile := createTempFile(t, `{not json`)
	defer os.Remove(tempFile)

	if _, err := ReadMealsResultFromJSON(tempFile); err == nil {
		t.Errorf("Expected an error for malformed JSON")
	}
}

func TestReadRawTablesFromJSON(t *testing.T) {
	content := `[
		{
			"header": ["Data", "Prato"],
			"rows": [["29/ago", "Frango", 2, null]]
		}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	tables, err := ReadRawTablesFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}

	row := tables[0].Rows[0]
	if row[0] != models.TextCell("29/ago") {
		t.Errorf("Expected text cell, got %+v", row[0])
	}
	if row[2] != models.NumberCell(2) {
		t.Errorf("Expected numeric cell, got %+v", row[2])
	}
	if row[3].Kind != models.CellEmpty {
		t.Errorf("Expected null to decode as empty cell, got %+v", row[3])
	}
}

func TestMarshalMealsResult_PreservesNonASCII(t *testing.T) {
	meals := models.NewEmptyMealsResult()
	meals.Append(models.CATEGORY_BREAKFAST, models.MealRecord{"Pão de queijo"})

	data, err := MarshalMealsResult(meals)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Café da Manhã") {
		t.Errorf("Expected literal UTF-8 key, got %s", content)
	}
	if strings.Contains(content, `\u`) {
		t.Errorf("Expected no unicode escapes, got %s", content)
	}
}
