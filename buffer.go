package riffwave

import (
	"errors"
	"time"

	"github.com/go-audio/audio"
)

// Buffer is a fully decoded audio stream. Samples are normalized to about
// [-1, 1] and interleaved by channel: frame 0 ch0, frame 0 ch1, frame 1 ch0...
//
// len(Samples) is always Frames * NumChannels.
type Buffer struct {
	// Name is the name given by the caller of Load, LoadFile uses the file
	// name.
	Name        string
	SampleRate  uint32
	NumChannels uint16
	// Frames is the number of samples per channel.
	Frames int
	// SourceBitDepth is the bit depth of the decoded data chunk.
	SourceBitDepth int
	Samples        []float32
}

// Duration returns the playback duration of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b == nil {
		return 0
	}

	return framesDuration(b.Frames, b.SampleRate)
}

// Frame returns the samples of frame i, one per channel. The returned slice
// shares memory with the buffer. It returns nil when i is out of range.
func (b *Buffer) Frame(i int) []float32 {
	if b == nil || i < 0 || i >= b.Frames {
		return nil
	}

	n := int(b.NumChannels)

	return b.Samples[i*n : (i+1)*n : (i+1)*n]
}

// Peak returns the largest absolute sample value of each channel.
func (b *Buffer) Peak() []float32 {
	if b == nil || b.NumChannels == 0 {
		return nil
	}

	n := int(b.NumChannels)
	peaks := make([]float32, n)

	for i, v := range b.Samples {
		if v < 0 {
			v = -v
		}

		if v > peaks[i%n] {
			peaks[i%n] = v
		}
	}

	return peaks
}

// Format returns the go-audio format of the buffer.
func (b *Buffer) Format() *audio.Format {
	if b == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(b.NumChannels),
		SampleRate:  int(b.SampleRate),
	}
}

// Float32Buffer copies the samples into a go-audio float buffer.
func (b *Buffer) Float32Buffer() *audio.Float32Buffer {
	if b == nil {
		return nil
	}

	return &audio.Float32Buffer{
		Format:         b.Format(),
		Data:           append([]float32(nil), b.Samples...),
		SourceBitDepth: b.SourceBitDepth,
	}
}

// IntBuffer converts the samples back to integer PCM values of the given bit
// depth, reversing the decode scaling. A bit depth of 0 uses the source bit
// depth. 8-bit values are signed, in [-128, 127].
func (b *Buffer) IntBuffer(bitDepth int) (*audio.IntBuffer, error) {
	if b == nil {
		return nil, errors.New("nil buffer")
	}

	if bitDepth == 0 {
		bitDepth = b.SourceBitDepth
	}

	quantize, err := sampleQuantizeFunc(bitDepth)
	if err != nil {
		return nil, err
	}

	data := make([]int, len(b.Samples))
	for i, v := range b.Samples {
		data[i] = quantize(v)
	}

	return &audio.IntBuffer{
		Format:         b.Format(),
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}
