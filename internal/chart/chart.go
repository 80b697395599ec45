// Package chart renders the per-category score charts embedded in the
// results report.
package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	"allyship/internal/model"
)

const (
	chartWidth  = 900
	chartHeight = 400
)

// Image is one rendered chart, ready for PDF embedding.
type Image struct {
	PNG    []byte
	Aspect float64 // width / height
}

// CategoryCharts renders one bar chart per category, plotting each
// subsection's percentage on a fixed 0-100 axis.
func CategoryCharts(sum *model.ScoreSummary) ([]Image, error) {
	var images []Image
	for _, cat := range sum.Categories {
		var bars []gochart.Value
		for _, sub := range sum.Subsections {
			if sub.Category != cat.Category {
				continue
			}
			bars = append(bars, gochart.Value{
				Value: float64(sub.Percent),
				Label: sub.Section,
			})
		}
		if len(bars) == 0 {
			continue
		}

		graph := gochart.BarChart{
			Title:    cat.Category,
			Width:    chartWidth,
			Height:   chartHeight,
			BarWidth: 48,
			Background: gochart.Style{
				Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
			},
			YAxis: gochart.YAxis{
				Range: &gochart.ContinuousRange{Min: 0, Max: 100},
			},
			Bars: bars,
		}

		var buf bytes.Buffer
		if err := graph.Render(gochart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("render chart for category %q: %w", cat.Category, err)
		}
		images = append(images, Image{
			PNG:    buf.Bytes(),
			Aspect: float64(chartWidth) / float64(chartHeight),
		})
	}
	return images, nil
}
