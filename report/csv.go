package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/ajaouad/pqcbench/bench"
)

// The CSV exports exist for spreadsheet-side analysis; one file per result
// kind, since the three row types share no columns.

func WriteCompressionCSV(results *bench.Results, w io.Writer) error {
	return gocsv.Marshal(&results.Compression, w)
}

func WriteKEMCSV(results *bench.Results, w io.Writer) error {
	return gocsv.Marshal(&results.KEM, w)
}

func WriteCombinedCSV(results *bench.Results, w io.Writer) error {
	return gocsv.Marshal(&results.Combined, w)
}
