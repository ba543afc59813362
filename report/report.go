package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/ajaouad/pqcbench/bench"
)

// WriteAll writes every artifact kind into outputDir (created if missing):
//
//	benchmark_results.json
//	benchmark_results.tex
//	compression.csv, pqc.csv, combined.csv
//	figures/*.svg
//
// Figures that have no data (e.g. bandwidth savings when the KEM rows all
// failed) are skipped; every other failure is collected and reported once
// all artifacts have been attempted.
func WriteAll(results *bench.Results, outputDir string) error {
	if err := os.MkdirAll(filepath.Join(outputDir, "figures"), 0o755); err != nil {
		return err
	}

	var writeErr *multierror.Error

	writers := []struct {
		Path  string
		Write func(*bench.Results, io.Writer) error
	}{
		{"benchmark_results.json", WriteJSON},
		{"benchmark_results.tex", WriteLaTeX},
		{"compression.csv", WriteCompressionCSV},
		{"pqc.csv", WriteKEMCSV},
		{"combined.csv", WriteCombinedCSV},
	}
	for _, artifact := range writers {
		err := writeFile(
			filepath.Join(outputDir, artifact.Path),
			func(w io.Writer) error { return artifact.Write(results, w) },
		)
		if err != nil {
			writeErr = multierror.Append(writeErr, err)
		}
	}

	for _, figure := range defaultFigures(results) {
		path := filepath.Join(outputDir, "figures", figure.Filename)
		if err := writeFile(path, figure.Render); err != nil {
			writeErr = multierror.Append(
				writeErr, fmt.Errorf("figure %s: %w", figure.Filename, err))
		}
	}

	return writeErr.ErrorOrNil()
}

type figureSpec struct {
	Filename string
	Render   func(io.Writer) error
}

// defaultFigures lists the thesis figure set: ratio and throughput per
// dataset, the KEM size comparison, and per-KEM bandwidth savings on the
// medium telemetry batch.
func defaultFigures(results *bench.Results) []figureSpec {
	figures := []figureSpec{}

	seenDatasets := map[string]bool{}
	for _, row := range results.Compression {
		if !row.Success || seenDatasets[row.Dataset] {
			continue
		}
		seenDatasets[row.Dataset] = true

		dataset := row.Dataset
		figures = append(figures,
			figureSpec{
				Filename: "compression_ratio_" + dataset + ".svg",
				Render: func(w io.Writer) error {
					return RenderCompressionRatios(results, dataset, w)
				},
			},
			figureSpec{
				Filename: "throughput_" + dataset + ".svg",
				Render: func(w io.Writer) error {
					return RenderThroughput(results, dataset, w)
				},
			},
		)
	}

	if len(results.KEM) > 0 {
		figures = append(figures, figureSpec{
			Filename: "kem_sizes.svg",
			Render: func(w io.Writer) error {
				return RenderKEMSizes(results, w)
			},
		})
	}

	for _, row := range results.KEM {
		if !row.Success || !seenDatasets["iot_medium"] {
			continue
		}
		algorithm := row.Algorithm
		figures = append(figures, figureSpec{
			Filename: "bandwidth_savings_" + algorithm + ".svg",
			Render: func(w io.Writer) error {
				return RenderBandwidthSavings(results, algorithm, "iot_medium", w)
			},
		})
	}

	return figures
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
