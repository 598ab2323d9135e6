// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command brro compresses and decompresses WAV sample data with the brro
// engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/audio"
	"github.com/brro-compressor/brro/frame"
	"github.com/brro-compressor/brro/optimizer"
	"github.com/brro-compressor/brro/stream"
)

var (
	dashc string
	dashe int
	dashd bool
	dashv bool
)

func init() {
	flag.StringVar(&dashc, "c", "auto", "compressor: auto|noop|fft|wavelet|constant|polynomial|topbottom")
	flag.IntVar(&dashe, "e", 5, "error budget, percent in [0,50]")
	flag.BoolVar(&dashd, "d", false, "decompress instead of compress")
	flag.BoolVar(&dashv, "v", false, "verbose logging")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func logv(f string, args ...interface{}) {
	if dashv {
		fmt.Fprintf(os.Stderr, f+"\n", args...)
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		exitf("usage: brro [flags] <input-path>")
	}
	input := flag.Arg(0)

	kind, err := parseKind(dashc)
	if err != nil {
		exitf("%s", err)
	}
	if dashe < 0 || dashe > 50 {
		exitf("error budget %d%% out of range [0,50]", dashe)
	}

	info, err := os.Stat(input)
	if err != nil {
		exitf("%s", err)
	}
	if info.IsDir() {
		if err := runDir(input, kind, dashe); err != nil {
			exitf("%s", err)
		}
		return
	}
	if err := runFile(input, kind, dashe); err != nil {
		exitf("%s", err)
	}
}

// parseKind maps the CLI's -c surface onto a brro.CompressorKind; "auto"
// maps to brro.Auto. wavelet and topbottom are recognised names, but they
// are not backed by a core compressor kind and are rejected as InvalidInput.
func parseKind(s string) (brro.CompressorKind, error) {
	switch s {
	case "auto":
		return brro.Auto, nil
	case "noop":
		return brro.Noop, nil
	case "fft":
		return brro.FFT, nil
	case "constant":
		return brro.Constant, nil
	case "polynomial":
		return brro.Polynomial, nil
	case "wavelet", "topbottom":
		return 0, brro.NewError(brro.InvalidInput, "parseKind", fmt.Sprintf("compressor %q is not backed by a core kind in this engine", s))
	default:
		return 0, brro.NewError(brro.InvalidInput, "parseKind", fmt.Sprintf("unknown compressor %q", s))
	}
}

// runDir compresses every *.wav file in dir to a sibling .bro file, a
// convenience carried over from the original tool's directory batching.
func runDir(dir string, kind brro.CompressorKind, errPct int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		logv("compressing %s", path)
		if err := runFile(path, kind, errPct); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func runFile(path string, kind brro.CompressorKind, errPct int) error {
	if dashd {
		return decompressFile(path)
	}
	return compressFile(path, kind, errPct)
}

func compressFile(path string, kind brro.CompressorKind, errPct int) error {
	samples, format, err := audio.ReadFile(path)
	if err != nil {
		return err
	}
	logv("read %d samples from %s (%d Hz, %d ch)", len(samples), path, format.SampleRate, format.NumChannels)

	maxErr := float64(errPct) / 100
	plans := optimizer.Split(samples)

	var s stream.Stream
	for _, p := range plans {
		switch {
		case kind == brro.Auto:
			err = s.CompressChunkAuto(p.Data, maxErr, frame.SpeedFast)
		case maxErr > 0:
			err = s.CompressChunkBounded(p.Data, kind, maxErr)
		default:
			err = s.CompressChunk(p.Data, kind)
		}
		if err != nil {
			return err
		}
	}

	buf, err := s.ToBytes()
	if err != nil {
		return err
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".bro"
	logv("writing %s (%d bytes, %d frames)", out, len(buf), len(s.Frames))
	return os.WriteFile(out, buf, 0o644)
}

func decompressFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s, err := stream.FromBytes(buf)
	if err != nil {
		return err
	}
	samples, err := s.Decompress()
	if err != nil {
		return err
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".wav"
	logv("writing %s (%d samples)", out, len(samples))
	return audio.WriteFile(out, samples, audio.Format{SampleRate: 44100, NumChannels: 1})
}
