// Command kcomp is the file front-end of the hybrid compressor.
//
//	kcomp <input>              Compress (output: <input>.kc)
//	kcomp c <input> [output]   Compress a file
//	kcomp d <input> [output]   Decompress a file
//	kcomp b <input>            Benchmark against stock codecs
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/khaledalam/kcomp"
	"github.com/khaledalam/kcomp/format"
	"github.com/khaledalam/kcomp/internal/logging"
)

var version = "1.0.2"

func main() {
	app := &cli.App{
		Name:    "kcomp",
		Usage:   "high-performance compression utility with adaptive algorithm selection",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "silent",
				Aliases: []string{"s"},
				Usage:   "disable progress output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			logging.Setup(c.String("log-level"))

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "c",
				Usage:     "compress a file",
				ArgsUsage: "<input> [output]",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return cli.Exit("usage: kcomp c [-s|--silent] <input> [output]", 1)
					}
					input := c.Args().Get(0)
					output := c.Args().Get(1)
					if output == "" {
						output = input + ".kc"
					}

					return doCompress(input, output, c.Bool("silent"))
				},
			},
			{
				Name:      "d",
				Usage:     "decompress a file",
				ArgsUsage: "<input> [output]",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return cli.Exit("usage: kcomp d [-s|--silent] <input> [output]", 1)
					}

					return doDecompress(c.Args().Get(0), c.Args().Get(1), c.Bool("silent"))
				},
			},
			{
				Name:      "b",
				Usage:     "benchmark compression against stock codecs",
				ArgsUsage: "<input>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("usage: kcomp b <input>", 1)
					}

					return doBench(c.Args().Get(0))
				},
			},
		},
		// Shorthand: `kcomp file.txt` compresses to file.txt.kc.
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowAppHelp(c) //nolint:errcheck

				return cli.Exit("", 1)
			}
			input := c.Args().Get(0)

			return doCompress(input, input+".kc", c.Bool("silent"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("kcomp failed")
		os.Exit(2)
	}
}

func doCompress(inputPath, outputPath string, silent bool) error {
	input, err := readAll(inputPath, "Reading", silent)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	start := time.Now()
	log.Debug().Int("bytes", len(input)).Msg("compressing")
	compressed := kcomp.Compress(input)
	if len(compressed) > 0 {
		log.Debug().Stringer("mode", format.Mode(compressed[0])).Msg("pipeline selected")
	}
	out := addHeader(compressed, inputPath)

	if err := writeAll(outputPath, out, "Writing", silent); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if !silent {
		ratio := 0.0
		if len(input) > 0 {
			ratio = 100.0 * float64(len(out)) / float64(len(input))
		}
		fmt.Fprintf(os.Stderr, "\n%s -> %s\n", formatSize(len(input)), formatSize(len(out)))
		fmt.Fprintf(os.Stderr, "Ratio: %.1f%% | Time: %.2fs\n", ratio, time.Since(start).Seconds())
		fmt.Fprintf(os.Stderr, "Output: %s\n", outputPath)
	}

	return nil
}

func doDecompress(inputPath, explicitOutput string, silent bool) error {
	input, err := readAll(inputPath, "Reading", silent)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	name, offset := parseHeader(input)

	outputPath := explicitOutput
	if outputPath == "" {
		if name != "" {
			outputPath = name
		} else if strings.HasSuffix(inputPath, ".kc") {
			outputPath = strings.TrimSuffix(inputPath, ".kc")
		} else {
			outputPath = inputPath + ".out"
		}
	}

	start := time.Now()
	out := kcomp.Decompress(input[offset:])

	if err := writeAll(outputPath, out, "Writing", silent); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if !silent {
		fmt.Fprintf(os.Stderr, "\n%s -> %s\n", formatSize(len(input)), formatSize(len(out)))
		fmt.Fprintf(os.Stderr, "Time: %.2fs\n", time.Since(start).Seconds())
		fmt.Fprintf(os.Stderr, "Output: %s\n", outputPath)
	}

	return nil
}

// readAll loads a file with a byte-count progress bar unless silent.
func readAll(path, label string, silent bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if silent || info.Size() == 0 {
		return os.ReadFile(path)
	}

	bar := pb.New64(info.Size()).SetUnits(pb.U_BYTES).Prefix(label)
	bar.Output = os.Stderr
	bar.Start()
	defer bar.Finish()

	return io.ReadAll(bar.NewProxyReader(f))
}

func writeAll(path string, data []byte, label string, silent bool) error {
	if silent {
		return os.WriteFile(path, data, 0o644)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bar := pb.New(len(data)).SetUnits(pb.U_BYTES).Prefix(label)
	bar.Output = os.Stderr
	bar.Start()
	defer bar.Finish()

	for off := 0; off < len(data); {
		chunk := len(data) - off
		if chunk > 64*1024 {
			chunk = 64 * 1024
		}
		n, err := f.Write(data[off : off+chunk])
		if err != nil {
			return err
		}
		off += n
		bar.Add(n)
	}

	return nil
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
