package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/VicJoao/CardapioRU/api"
	"github.com/VicJoao/CardapioRU/menu"
	"github.com/VicJoao/CardapioRU/models"
)

var monthAbbrevs = []string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// todayToken builds the dd/mon token for the current date, so refresher
// tests qualify regardless of when they run.
func todayToken() string {
	now := time.Now()
	return fmt.Sprintf("%02d/%s", now.Day(), monthAbbrevs[int(now.Month())-1])
}

// fixedExtractor returns a single-table document with one row per token.
type fixedExtractor struct {
	tokens []string
}

func (f *fixedExtractor) ExtractTables(pdfPath string) ([]models.RawTable, error) {
	rows := [][]models.Cell{
		{models.TextCell("Data"), models.TextCell("Prato")},
	}
	for i, token := range f.tokens {
		rows = append(rows, []models.Cell{
			models.TextCell(token),
			models.TextCell(fmt.Sprintf("Prato %d", i+1)),
		})
	}
	return []models.RawTable{
		{
			Header: []string{"CARDÁPIO DE TESTE – ALMOÇO"},
			Rows:   rows,
		},
	}, nil
}

func newRefresherForTest(t *testing.T, pdfURL string, dao *mockMenuDAO, tokens []string) (*MenuRefresherService, *MenuService) {
	t.Helper()
	menuService := NewMenuService(dao)
	pipeline := menu.NewPipeline(&fixedExtractor{tokens: tokens})
	downloader := api.NewHTTPClient(2 * time.Second)
	localPath := filepath.Join(t.TempDir(), "cardapio.pdf")

	refresher := NewMenuRefresherService(
		downloader, pipeline, menuService,
		pdfURL, localPath, 2*time.Second, "",
	)
	return refresher, menuService
}

func TestRefreshMenuData_PublishesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	dao := &mockMenuDAO{}
	refresher, menuService := newRefresherForTest(t, srv.URL, dao, []string{todayToken()})

	if err := refresher.RefreshMenuData(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	meals, err := menuService.GetCurrentMeals()
	if err != nil {
		t.Fatalf("Expected a published snapshot, got %v", err)
	}
	if len(meals[models.CATEGORY_BREAKFAST]) != 1 {
		t.Errorf("Expected one breakfast record, got %d", len(meals[models.CATEGORY_BREAKFAST]))
	}
	if dao.saved == nil {
		t.Errorf("Expected the snapshot persisted through the DAO")
	}
}

func TestRefreshMenuData_DownloadFailureDoesNotPublish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dao := &mockMenuDAO{}
	refresher, _ := newRefresherForTest(t, srv.URL, dao, []string{todayToken()})

	if err := refresher.RefreshMenuData(); err == nil {
		t.Fatal("Expected the failed download to surface as an error")
	}
	if dao.saved != nil {
		t.Errorf("Expected no snapshot published after a failed download")
	}
}

func TestRefreshMenuData_NoQualifyingRowsYieldsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	dao := &mockMenuDAO{}
	refresher, menuService := newRefresherForTest(t, srv.URL, dao, nil)

	if err := refresher.RefreshMenuData(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	meals, err := menuService.GetCurrentMeals()
	if err != nil {
		t.Fatalf("Expected a published snapshot, got %v", err)
	}
	for _, category := range models.Categories {
		if len(meals[category]) != 0 {
			t.Errorf("Expected %s empty, got %d records", category, len(meals[category]))
		}
	}
}
