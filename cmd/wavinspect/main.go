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

// Command wavinspect is a legacy standalone tool that prints a WAV file's
// format chunk. It predates, and does not invoke, the compression engine.
package main

import (
	"fmt"
	"os"

	"github.com/brro-compressor/brro/audio"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: wavinspect <file.wav>")
		os.Exit(1)
	}
	path := os.Args[1]

	samples, format, err := audio.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		os.Exit(1)
	}

	duration := float64(format.NumFrames) / float64(format.SampleRate)
	fmt.Printf("File: %s\n", path)
	fmt.Printf("  Sample rate:  %d Hz\n", format.SampleRate)
	fmt.Printf("  Bit depth:    %d\n", format.BitDepth)
	fmt.Printf("  Channels:     %d\n", format.NumChannels)
	fmt.Printf("  Frames:       %d\n", format.NumFrames)
	fmt.Printf("  Duration:     %.3fs\n", duration)
	fmt.Printf("  Packed samples: %d\n", len(samples))
}
