package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/khaledalam/kcomp/compress"
)

// doBench measures every baseline codec and the hybrid compressor over the
// same input and prints one row per codec: size, ratio, savings, timings and
// the digest-verified round-trip flag.
func doBench(path string) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fmt.Printf("%-8s %12s %8s %8s %12s %12s  %s\n",
		"codec", "size", "ratio", "saved", "comp", "decomp", "ok")

	for _, codec := range compress.Baselines() {
		r := compress.Measure(codec, input)
		if r.Err != nil {
			log.Error().Err(r.Err).Str("codec", r.Type.String()).Msg("bench failed")
			continue
		}
		if !r.Verified {
			log.Error().Str("codec", r.Type.String()).Msg("round-trip mismatch")
		}

		fmt.Printf("%-8s %12d %7.1f%% %7.1f%% %12s %12s  %v\n",
			r.Type, r.CompressedSize, 100*r.Ratio(), r.SpaceSavings(),
			r.CompressTime.Round(time.Microsecond),
			r.DecompressTime.Round(time.Microsecond), r.Verified)
	}

	return nil
}
