package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/VicJoao/CardapioRU/models"
)

// PlotMealsOverview renders an HTML bar chart of how many records each meal
// category holds. Handy for eyeballing whether an extraction run picked up
// the whole day.
func PlotMealsOverview(meals models.MealsResult, outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Cardápio Overview",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Registros por refeição",
		}),
	)

	var values []opts.BarData
	for _, category := range models.Categories {
		values = append(values, opts.BarData{Value: len(meals[category])})
	}

	bar.SetXAxis(models.Categories)
	bar.AddSeries("Registros", values)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Println("Cardápio overview generated: " + outputPath)
	return nil
}
