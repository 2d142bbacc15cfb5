package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ccin2p3/fistsum/internal/summary"
)

// RenderPlot writes an HTML page with bar charts of the file-size
// distribution: file counts and byte totals per power-of-two bucket.
func RenderPlot(w io.Writer, rep *summary.SizeReport) error {
	labels := make([]string, len(rep.Buckets))
	files := make([]opts.BarData, len(rep.Buckets))
	bytesData := make([]opts.BarData, len(rep.Buckets))

	for i, bucket := range rep.Buckets {
		labels[i] = bucket.Range
		files[i] = opts.BarData{Value: bucket.Files}
		bytesData[i] = opts.BarData{Value: bucket.Bytes}
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(
		sizeBarChart(rep.Name+": files per size range", "files", labels, files),
		sizeBarChart(rep.Name+": bytes per size range", "bytes", labels, bytesData),
	)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	return nil
}

func sizeBarChart(title, yLabel string, labels []string, data []opts.BarData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yLabel}),
	)

	bar.SetXAxis(labels)
	bar.AddSeries(yLabel, data)

	return bar
}
