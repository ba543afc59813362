package bench

import (
	"bytes"
	"encoding/json"
)

// Dataset is one named input buffer the suite runs every codec over.
type Dataset struct {
	Name string
	Data []byte
}

// telemetryReading mirrors the JSON a field sensor actually uploads; the
// generated datasets are this reading repeated to size, which reproduces the
// high redundancy of batched IoT telemetry.
type telemetryReading struct {
	SensorID   string            `json:"sensor_id"`
	DeviceType string            `json:"device_type"`
	Timestamp  string            `json:"timestamp"`
	Location   telemetryLocation `json:"location"`
	Readings   telemetryReadings `json:"readings"`
}

type telemetryLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type telemetryReadings struct {
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	Pressure       float64 `json:"pressure"`
	Battery        float64 `json:"battery"`
	SignalStrength int     `json:"signal_strength"`
}

var baseReading = telemetryReading{
	SensorID:   "temp_sensor_001",
	DeviceType: "temperature_humidity",
	Timestamp:  "2026-01-04T10:30:00Z",
	Location:   telemetryLocation{Lat: 33.5731, Lon: -7.5898},
	Readings: telemetryReadings{
		Temperature:    25.5,
		Humidity:       60.2,
		Pressure:       1013.25,
		Battery:        87.5,
		SignalStrength: -65,
	},
}

// GenerateTelemetry returns sizeKB kibibytes of realistic sensor JSON: one
// reading marshaled and repeated, truncated to the exact target size.
func GenerateTelemetry(sizeKB int) []byte {
	reading, err := json.Marshal(baseReading)
	if err != nil {
		panic(err) // static struct, cannot fail
	}

	targetSize := sizeKB * 1024
	repetitions := targetSize/len(reading) + 1
	return bytes.Repeat(reading, repetitions)[:targetSize]
}

// DefaultDatasets returns the benchmark corpus: three telemetry batches of
// increasing size, a highly compressible two-run buffer, and a cycling
// byte pattern with maximal symbol spread (named "random" for continuity
// with earlier result tables, though it's deterministic).
func DefaultDatasets() []Dataset {
	cycling := make([]byte, 10240)
	for i := range cycling {
		cycling[i] = byte(i % 256)
	}

	return []Dataset{
		{Name: "iot_small", Data: GenerateTelemetry(1)},
		{Name: "iot_medium", Data: GenerateTelemetry(10)},
		{Name: "iot_large", Data: GenerateTelemetry(100)},
		{
			Name: "repetitive",
			Data: append(
				bytes.Repeat([]byte{'0'}, 5000),
				bytes.Repeat([]byte{'1'}, 5000)...,
			),
		},
		{Name: "random", Data: cycling},
	}
}
