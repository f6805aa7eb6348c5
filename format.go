package riffwave

import (
	"errors"
	"fmt"
	"io"
)

const (
	// FormatPCM is the format tag of integer PCM data.
	FormatPCM = 1
	// FormatIEEEFloat is the format tag of IEEE 754 float data.
	FormatIEEEFloat = 3

	fmtChunkMinSize = 16
	fmtChunkExtSize = fmtChunkMinSize + 2
)

// Format is the parsed content of a fmt chunk.
type Format struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// ExtraSize is only present when the fmt payload holds at least 18 bytes.
	ExtraSize uint16
}

// Supported reports whether the format tag can be decoded.
func (f *Format) Supported() bool {
	if f == nil {
		return false
	}

	return f.FormatTag == FormatPCM || f.FormatTag == FormatIEEEFloat
}

// BytesPerSample returns the storage size of one sample of one channel.
func (f *Format) BytesPerSample() int {
	if f == nil {
		return 0
	}

	return int(f.BitsPerSample) / 8
}

// String implements the Stringer interface.
func (f *Format) String() string {
	if f == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s - %d channels @ %d / %d bits",
		formatTagName(f.FormatTag), f.NumChannels, f.SampleRate, f.BitsPerSample)
}

func formatTagName(tag uint16) string {
	switch tag {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	default:
		return fmt.Sprintf("format tag 0x%04X", tag)
	}
}

// parseFormat decodes a fmt chunk. The format tag isn't validated here.
func parseFormat(c *Chunk) (*Format, error) {
	if c == nil {
		return nil, errors.New("nil fmt chunk")
	}

	if len(c.Data) < fmtChunkMinSize {
		return nil, fmt.Errorf("%w: fmt chunk is %d bytes", ErrTruncatedStream, len(c.Data))
	}

	chunk := c.riffChunk()
	f := &Format{}

	type field struct {
		name string
		dst  any
	}

	fields := []field{
		{"format tag", &f.FormatTag},
		{"channels", &f.NumChannels},
		{"sample rate", &f.SampleRate},
		{"avg bytes/sec", &f.AvgBytesPerSec},
		{"block align", &f.BlockAlign},
		{"bit depth", &f.BitsPerSample},
	}

	// A single stray byte after the base block is not an extension.
	if len(c.Data) >= fmtChunkExtSize {
		fields = append(fields, field{"extension size", &f.ExtraSize})
	}

	for _, fd := range fields {
		if err := chunk.ReadLE(fd.dst); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = ErrTruncatedStream
			}

			return nil, fmt.Errorf("failed to read %s: %w", fd.name, err)
		}
	}

	return f, nil
}
