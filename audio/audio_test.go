package audio

import (
	"math"
	"testing"

	"github.com/go-audio/audio"
)

func TestPackChannelsBitLayout(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 4, SampleRate: 8000},
		Data:   []int{1, 2, 3, 4},
	}
	out, err := packChannels(buf, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d frames, want 1", len(out))
	}
	wantBits := uint64(1) | uint64(2)<<16 | uint64(3)<<32 | uint64(4)<<48
	want := math.Float64frombits(wantBits)
	if out[0] != want {
		t.Fatalf("packed = %v (bits %#x), want %v (bits %#x)", out[0], math.Float64bits(out[0]), want, wantBits)
	}
}

func TestPackChannelsRejectsOutOfRangeCount(t *testing.T) {
	buf := &audio.IntBuffer{Format: &audio.Format{NumChannels: 5}, Data: []int{0}}
	if _, err := packChannels(buf, 5); err == nil {
		t.Fatal("expected error for 5 channels")
	}
}

func TestPackChannelsSingleChannel(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{-1, 0, 1},
	}
	out, err := packChannels(buf, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d frames, want 3", len(out))
	}
	want := math.Float64frombits(uint64(uint16(int16(-1))))
	if out[0] != want {
		t.Fatalf("packed[-1] = %v, want %v", out[0], want)
	}
}
