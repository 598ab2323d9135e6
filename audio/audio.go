// Package audio reads and writes the WAV container the CLI uses to obtain
// and inspect sample chunks. A brro sample is a float64 packed from four
// 16-bit PCM channels: f64 = chan0 | chan1<<16 | chan2<<32 | chan3<<48.
package audio

import (
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/brro-compressor/brro"
)

// Format describes the layout of a decoded WAV file, independent of its
// sample data.
type Format struct {
	SampleRate  int
	BitDepth    int
	NumChannels int
	NumFrames   int
}

const channelsPerSample = 4

// ReadFile decodes a 16-bit PCM WAV file of one to four channels into one
// float64 per frame using the packed bit layout, plus its Format.
func ReadFile(path string) ([]float64, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Format{}, brro.NewError(brro.InvalidInput, "audio.ReadFile", err.Error())
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a 16-bit PCM WAV stream of one to four channels into one
// float64 per frame.
func Read(r io.Reader) ([]float64, Format, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Format{}, brro.NewError(brro.Malformed, "audio.Read", "not a valid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Format{}, brro.NewError(brro.Malformed, "audio.Read", err.Error())
	}
	if dec.BitDepth != 16 {
		return nil, Format{}, brro.NewError(brro.InvalidInput, "audio.Read", "only 16-bit PCM is supported")
	}
	format := Format{
		SampleRate:  int(dec.SampleRate),
		BitDepth:    int(dec.BitDepth),
		NumChannels: int(dec.NumChans),
		NumFrames:   buf.NumFrames(),
	}
	samples, err := packChannels(buf, format.NumChannels)
	if err != nil {
		return nil, Format{}, err
	}
	return samples, format, nil
}

// packChannels groups buf's interleaved 16-bit samples into frames of up to
// channelsPerSample channels and packs each frame into one float64: channel
// i occupies bits [16*i, 16*i+16). Missing channels (fewer than four present
// in the file) contribute zero bits.
func packChannels(buf *audio.IntBuffer, numChannels int) ([]float64, error) {
	if numChannels < 1 || numChannels > channelsPerSample {
		return nil, brro.NewError(brro.InvalidInput, "audio.packChannels", "WAV file must have 1-4 channels")
	}
	data := buf.Data
	numFrames := len(data) / numChannels
	out := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		var packed uint64
		for ch := 0; ch < numChannels; ch++ {
			v := uint16(data[i*numChannels+ch])
			packed |= uint64(v) << (16 * ch)
		}
		out[i] = math.Float64frombits(packed)
	}
	return out, nil
}

// WriteFile packs samples back into up to four 16-bit PCM channels and
// writes them as a WAV file at path, using format's sample rate and channel
// count.
func WriteFile(path string, samples []float64, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return brro.NewError(brro.InvalidInput, "audio.WriteFile", err.Error())
	}
	defer f.Close()
	return Write(f, samples, format)
}

// Write packs samples back into up to four 16-bit PCM channels and encodes
// them as a WAV stream.
func Write(w io.WriteSeeker, samples []float64, format Format) error {
	numChannels := format.NumChannels
	if numChannels < 1 || numChannels > channelsPerSample {
		numChannels = 1
	}
	data := make([]int, len(samples)*numChannels)
	for i, s := range samples {
		packed := math.Float64bits(s)
		for ch := 0; ch < numChannels; ch++ {
			data[i*numChannels+ch] = int(int16(packed >> (16 * ch)))
		}
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	enc := wav.NewEncoder(w, format.SampleRate, 16, numChannels, 1)
	if err := enc.Write(buf); err != nil {
		return brro.NewError(brro.Malformed, "audio.Write", err.Error())
	}
	return enc.Close()
}
