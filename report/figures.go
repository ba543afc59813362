package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ajaouad/pqcbench/bench"
)

// Figures are rendered as SVG so they can be embedded in the thesis at any
// scale without rasterization artifacts.

const (
	figureHeight = 512
	figureWidth  = 1024
	barWidth     = 60
)

// barRange builds an explicit y-axis range for a bar set. go-chart can't
// infer a range when all bars share one value, and savings bars need the
// zero line inside the plot even when every value is positive.
func barRange(bars []chart.Value) chart.Range {
	min, max := 0.0, 0.0
	for _, bar := range bars {
		if bar.Value < min {
			min = bar.Value
		}
		if bar.Value > max {
			max = bar.Value
		}
	}
	if max == min {
		max = min + 1
	}
	return &chart.ContinuousRange{Min: min, Max: max + (max-min)*0.1}
}

// RenderCompressionRatios draws one bar per algorithm showing its
// compression ratio on the named dataset.
func RenderCompressionRatios(results *bench.Results, dataset string, w io.Writer) error {
	bars := []chart.Value{}
	for _, row := range results.Compression {
		if row.Dataset != dataset || !row.Success {
			continue
		}
		bars = append(bars, chart.Value{
			Label: row.Algorithm,
			Value: row.CompressionRatio,
		})
	}
	if len(bars) == 0 {
		return fmt.Errorf("no successful compression results for dataset %q", dataset)
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Compression ratio (%s)", dataset),
		Height:     figureHeight,
		Width:      figureWidth,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis:      chart.YAxis{Range: barRange(bars)},
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}

// RenderThroughput draws one bar per algorithm showing its round-trip
// throughput in MB/s on the named dataset.
func RenderThroughput(results *bench.Results, dataset string, w io.Writer) error {
	bars := []chart.Value{}
	for _, row := range results.Compression {
		if row.Dataset != dataset || !row.Success {
			continue
		}
		bars = append(bars, chart.Value{
			Label: row.Algorithm,
			Value: row.ThroughputMBps,
		})
	}
	if len(bars) == 0 {
		return fmt.Errorf("no successful compression results for dataset %q", dataset)
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Throughput MB/s (%s)", dataset),
		Height:     figureHeight,
		Width:      figureWidth,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis:      chart.YAxis{Range: barRange(bars)},
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}

// RenderKEMSizes draws public-key and ciphertext sizes per KEM scheme,
// side by side.
func RenderKEMSizes(results *bench.Results, w io.Writer) error {
	bars := []chart.Value{}
	for _, row := range results.KEM {
		if !row.Success {
			continue
		}
		bars = append(bars,
			chart.Value{
				Label: row.Algorithm + " pk",
				Value: float64(row.PublicKeySize),
			},
			chart.Value{
				Label: row.Algorithm + " ct",
				Value: float64(row.CiphertextSize),
			},
		)
	}
	if len(bars) == 0 {
		return fmt.Errorf("no successful KEM results")
	}

	graph := chart.BarChart{
		Title:      "KEM public key and ciphertext sizes (bytes)",
		Height:     figureHeight,
		Width:      figureWidth,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis:      chart.YAxis{Range: barRange(bars)},
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}

// RenderBandwidthSavings draws, for one KEM scheme and dataset, the net
// bandwidth savings of each compression algorithm once the KEM ciphertext
// overhead is included. Bars can go negative: for small payloads the
// ciphertext outweighs what compression saves.
func RenderBandwidthSavings(
	results *bench.Results, kemAlgorithm, dataset string, w io.Writer,
) error {
	bars := []chart.Value{}
	for _, row := range results.Combined {
		if row.KEMAlgorithm != kemAlgorithm || row.Dataset != dataset || !row.Success {
			continue
		}
		bars = append(bars, chart.Value{
			Label: row.Compression,
			Value: row.BandwidthSavings,
		})
	}
	if len(bars) == 0 {
		return fmt.Errorf(
			"no successful combined results for %q on %q", kemAlgorithm, dataset)
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf(
			"Bandwidth savings %% with %s (%s)", kemAlgorithm, dataset),
		Height:     figureHeight,
		Width:      figureWidth,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis:      chart.YAxis{Range: barRange(bars)},
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}
