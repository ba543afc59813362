package bench

import (
	"time"
)

// Time fields throughout are in seconds, matching the units the LaTeX
// tables and figures are defined in.

// CompressionResult captures one codec run over one dataset.
type CompressionResult struct {
	Algorithm         string  `json:"algorithm" csv:"algorithm"`
	Dataset           string  `json:"dataset" csv:"dataset"`
	OriginalSize      int     `json:"original_size" csv:"original_size"`
	CompressedSize    int     `json:"compressed_size" csv:"compressed_size"`
	CompressionTime   float64 `json:"compression_time" csv:"compression_time"`
	DecompressionTime float64 `json:"decompression_time" csv:"decompression_time"`
	CompressionRatio  float64 `json:"compression_ratio" csv:"compression_ratio"`
	ThroughputMBps    float64 `json:"throughput_mbps" csv:"throughput_mbps"`
	Success           bool    `json:"success" csv:"success"`
	Error             string  `json:"error,omitempty" csv:"error"`
}

// SavingsPercent is how much smaller the compressed form is, in percent of
// the original size. Negative values mean the codec expanded the data.
func (r CompressionResult) SavingsPercent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(r.CompressedSize)/float64(r.OriginalSize)) * 100
}

// KEMResult captures one key-encapsulation run.
type KEMResult struct {
	Algorithm      string  `json:"algorithm" csv:"algorithm"`
	Provider       string  `json:"provider" csv:"provider"`
	PublicKeySize  int     `json:"pk_size" csv:"pk_size"`
	SecretKeySize  int     `json:"sk_size" csv:"sk_size"`
	CiphertextSize int     `json:"ct_size" csv:"ct_size"`
	KeyGenTime     float64 `json:"keygen_time" csv:"keygen_time"`
	EncapTime      float64 `json:"encap_time" csv:"encap_time"`
	DecapTime      float64 `json:"decap_time" csv:"decap_time"`
	Success        bool    `json:"success" csv:"success"`
	Simulated      bool    `json:"simulated" csv:"simulated"`
	Error          string  `json:"error,omitempty" csv:"error"`
}

// TotalTime is the sum of the three KEM phases in seconds.
func (r KEMResult) TotalTime() float64 {
	return r.KeyGenTime + r.EncapTime + r.DecapTime
}

// CombinedResult estimates the bandwidth of sending one dataset compressed
// and key-encapsulated: the payload shrinks to CompressedSize but the KEM
// ciphertext rides along with it.
type CombinedResult struct {
	KEMAlgorithm      string  `json:"pqc_algorithm" csv:"pqc_algorithm"`
	Compression       string  `json:"compression" csv:"compression"`
	Dataset           string  `json:"dataset" csv:"dataset"`
	OriginalSize      int     `json:"original_size" csv:"original_size"`
	CompressedSize    int     `json:"compressed_size" csv:"compressed_size"`
	CompressionRatio  float64 `json:"compression_ratio" csv:"compression_ratio"`
	KEMOverhead       int     `json:"pqc_overhead" csv:"pqc_overhead"`
	TotalTransmission int     `json:"total_transmission" csv:"total_transmission"`
	BandwidthSavings  float64 `json:"bandwidth_savings" csv:"bandwidth_savings"`
	TotalTime         float64 `json:"total_time" csv:"total_time"`
	Success           bool    `json:"success" csv:"success"`
}

// Results is the full output of one suite run.
type Results struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Compression []CompressionResult `json:"compression"`
	KEM         []KEMResult         `json:"pqc"`
	Combined    []CombinedResult    `json:"combined"`
}
