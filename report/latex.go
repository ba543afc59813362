package report

import (
	"fmt"
	"io"

	"github.com/ajaouad/pqcbench/bench"
)

// stickyErrWriter remembers the first write error so the table formatters
// don't have to check every Fprintf.
type stickyErrWriter struct {
	inner io.Writer
	err   error
}

func (w *stickyErrWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.inner.Write(p)
	w.err = err
	return n, err
}

// WriteLaTeX writes the three result tables as LaTeX, ready for \input into
// the thesis document.
func WriteLaTeX(results *bench.Results, out io.Writer) error {
	w := &stickyErrWriter{inner: out}
	fmt.Fprintf(
		w, "%% Benchmark results, generated %s\n\n",
		results.GeneratedAt.Format("2006-01-02 15:04"))

	writeCompressionTable(results.Compression, w)
	writeKEMTable(results.KEM, w)
	writeCombinedTable(results.Combined, w)
	return w.err
}

func writeCompressionTable(rows []bench.CompressionResult, w io.Writer) {
	fmt.Fprintln(w, `\begin{table}[h]`)
	fmt.Fprintln(w, `\centering`)
	fmt.Fprintln(w, `\caption{Compression Algorithm Performance}`)
	fmt.Fprintln(w, `\begin{tabular}{llccccc}`)
	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `Algorithm & Dataset & Size (KB) & Compressed (KB) & Ratio & Time (ms) & Throughput \\`)
	fmt.Fprintln(w, `\hline`)

	for _, row := range rows {
		if !row.Success {
			continue
		}
		fmt.Fprintf(
			w, `%s & %s & %.1f & %.1f & %.2fx & %.2f & %.1f MB/s \\`+"\n",
			escape(row.Algorithm),
			escape(row.Dataset),
			float64(row.OriginalSize)/1024,
			float64(row.CompressedSize)/1024,
			row.CompressionRatio,
			row.CompressionTime*1000,
			row.ThroughputMBps,
		)
	}

	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `\end{tabular}`)
	fmt.Fprintln(w, `\end{table}`)
	fmt.Fprintln(w)
}

func writeKEMTable(rows []bench.KEMResult, w io.Writer) {
	fmt.Fprintln(w, `\begin{table}[h]`)
	fmt.Fprintln(w, `\centering`)
	fmt.Fprintln(w, `\caption{Post-Quantum KEM Performance}`)
	fmt.Fprintln(w, `\begin{tabular}{lcccccc}`)
	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `Algorithm & PK (B) & SK (B) & CT (B) & KeyGen (ms) & Encap (ms) & Decap (ms) \\`)
	fmt.Fprintln(w, `\hline`)

	for _, row := range rows {
		if !row.Success {
			continue
		}
		name := row.Algorithm
		if row.Simulated {
			name += " (sim.)"
		}
		fmt.Fprintf(
			w, `%s & %d & %d & %d & %.3f & %.3f & %.3f \\`+"\n",
			escape(name),
			row.PublicKeySize,
			row.SecretKeySize,
			row.CiphertextSize,
			row.KeyGenTime*1000,
			row.EncapTime*1000,
			row.DecapTime*1000,
		)
	}

	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `\end{tabular}`)
	fmt.Fprintln(w, `\end{table}`)
	fmt.Fprintln(w)
}

func writeCombinedTable(rows []bench.CombinedResult, w io.Writer) {
	fmt.Fprintln(w, `\begin{table}[h]`)
	fmt.Fprintln(w, `\centering`)
	fmt.Fprintln(w, `\caption{Combined Compression + KEM Transmission Overhead}`)
	fmt.Fprintln(w, `\begin{tabular}{lllccc}`)
	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `KEM & Compression & Dataset & Total (B) & Savings (\%) & Time (ms) \\`)
	fmt.Fprintln(w, `\hline`)

	for _, row := range rows {
		if !row.Success {
			continue
		}
		fmt.Fprintf(
			w, `%s & %s & %s & %d & %+.1f & %.3f \\`+"\n",
			escape(row.KEMAlgorithm),
			escape(row.Compression),
			escape(row.Dataset),
			row.TotalTransmission,
			row.BandwidthSavings,
			row.TotalTime*1000,
		)
	}

	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `\end{tabular}`)
	fmt.Fprintln(w, `\end{table}`)
}

// escape protects the characters LaTeX treats specially that can plausibly
// show up in algorithm or dataset names.
func escape(s string) string {
	escaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_', '%', '&', '#', '$':
			escaped = append(escaped, '\\', s[i])
		default:
			escaped = append(escaped, s[i])
		}
	}
	return string(escaped)
}
