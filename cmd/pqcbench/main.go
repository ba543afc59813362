package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ajaouad/pqcbench"
	"github.com/ajaouad/pqcbench/bench"
	_ "github.com/ajaouad/pqcbench/compression/huffman"
	_ "github.com/ajaouad/pqcbench/compression/libcodec"
	_ "github.com/ajaouad/pqcbench/compression/rle"
	"github.com/ajaouad/pqcbench/kem"
	"github.com/ajaouad/pqcbench/report"
)

func main() {
	app := cli.App{
		Usage: "Benchmark post-quantum KEMs combined with compression for IoT telemetry",
		Commands: []*cli.Command{
			{
				Name:   "bench",
				Usage:  "Run the full benchmark suite and write result artifacts",
				Action: runBench,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "results",
						Usage:   "directory to write JSON/LaTeX/CSV/figures into",
					},
					&cli.StringSliceFlag{
						Name:  "codec",
						Usage: "codec to benchmark (repeatable; default all)",
					},
					&cli.StringSliceFlag{
						Name:  "scheme",
						Usage: "KEM scheme to benchmark (repeatable; default all)",
					},
					&cli.StringSliceFlag{
						Name:  "dataset",
						Usage: "dataset to include (repeatable; default all)",
					},
					&cli.BoolFlag{
						Name:  "simulate",
						Usage: "use the KEM simulator instead of the real schemes",
					},
				},
			},
			{
				Name:      "demo",
				Usage:     "Walk one payload through compress, encapsulate, decapsulate, decompress",
				Action:    runDemo,
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "codec",
						Value: "zlib",
						Usage: "compression codec to use",
					},
					&cli.StringFlag{
						Name:  "scheme",
						Value: "Kyber768",
						Usage: "KEM scheme to use",
					},
					&cli.BoolFlag{
						Name:  "simulate",
						Usage: "use the KEM simulator instead of the real schemes",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List registered codecs and KEM schemes",
				Action: runList,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func selectedProvider(context *cli.Context) kem.Provider {
	if context.Bool("simulate") {
		return kem.NewSimulator()
	}
	return kem.NewCIRCL()
}

func runBench(context *cli.Context) error {
	suite := bench.Suite{Provider: selectedProvider(context)}
	if names := context.StringSlice("codec"); len(names) > 0 {
		suite.CodecNames = names
	}
	if names := context.StringSlice("scheme"); len(names) > 0 {
		suite.SchemeNames = names
	}
	if names := context.StringSlice("dataset"); len(names) > 0 {
		datasets, err := selectDatasets(names)
		if err != nil {
			return err
		}
		suite.Datasets = datasets
	}

	fmt.Fprintf(os.Stderr, "running benchmark suite (provider: %s)...\n",
		suite.Provider.Name())
	results, err := suite.Run()
	if err != nil {
		return err
	}

	for _, result := range results.Compression {
		if !result.Success {
			fmt.Fprintf(os.Stderr, "warning: %s on %s failed: %s\n",
				result.Algorithm, result.Dataset, result.Error)
		}
	}

	outputDir := context.String("output")
	if err := report.WriteAll(results, outputDir); err != nil {
		return err
	}
	fmt.Printf("wrote %d compression, %d KEM, and %d combined results to %s\n",
		len(results.Compression), len(results.KEM), len(results.Combined),
		outputDir)
	return nil
}

func selectDatasets(names []string) ([]bench.Dataset, error) {
	byName := make(map[string]bench.Dataset)
	for _, dataset := range bench.DefaultDatasets() {
		byName[dataset.Name] = dataset
	}

	selected := make([]bench.Dataset, 0, len(names))
	for _, name := range names {
		dataset, found := byName[name]
		if !found {
			return nil, fmt.Errorf("unknown dataset %q", name)
		}
		selected = append(selected, dataset)
	}
	return selected, nil
}

func runDemo(context *cli.Context) error {
	codec, err := pqcbench.LookupCodec(context.String("codec"))
	if err != nil {
		return err
	}
	provider := selectedProvider(context)
	scheme, err := provider.Scheme(context.String("scheme"))
	if err != nil {
		return err
	}

	payload := bench.GenerateTelemetry(1)
	fmt.Printf("payload:           %d bytes of telemetry JSON\n", len(payload))

	compressed, err := codec.Encode(payload)
	if err != nil {
		return err
	}
	fmt.Printf("compressed (%s):   %d bytes\n", codec.Name(), len(compressed))

	keyPair, err := scheme.GenerateKeyPair()
	if err != nil {
		return err
	}
	fmt.Printf("key pair (%s):     pk %d bytes, sk %d bytes\n",
		scheme.Name(), len(keyPair.PublicKey), len(keyPair.SecretKey))

	ciphertext, sharedSecret, err := scheme.Encapsulate(keyPair.PublicKey)
	if err != nil {
		return err
	}
	fmt.Printf("encapsulated:      ct %d bytes, shared secret %d bytes\n",
		len(ciphertext), len(sharedSecret))

	recovered, err := scheme.Decapsulate(keyPair.SecretKey, ciphertext)
	if err != nil {
		return err
	}
	fmt.Printf("decapsulated:      shared secret %d bytes (receiver side)\n",
		len(recovered))

	decompressed, err := codec.Decode(compressed)
	if err != nil {
		return err
	}
	fmt.Printf("decompressed:      %d bytes\n", len(decompressed))

	total := len(compressed) + len(ciphertext)
	fmt.Printf("total transmission: %d bytes (%.1f%% of the raw payload)\n",
		total, float64(total)/float64(len(payload))*100)
	return nil
}

func runList(context *cli.Context) error {
	fmt.Println("codecs:")
	fmt.Println("  " + strings.Join(pqcbench.CodecNames(), "\n  "))

	provider := kem.NewCIRCL()
	fmt.Println("KEM schemes:")
	fmt.Println("  " + strings.Join(provider.SchemeNames(), "\n  "))
	return nil
}
