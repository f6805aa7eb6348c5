package riffwave

import (
	"fmt"
)

// sampleDecodeFunc returns the function converting one stored sample into a
// normalized float32, based on the bits per sample and the format tag.
// Note that 8bit samples are unsigned, all other integer depths are signed.
func sampleDecodeFunc(bitsPerSample uint16, formatTag uint16) (func([]byte) float32, error) {
	// NOTE: WAV PCM data is stored using little-endian
	switch bitsPerSample {
	case 8:
		return func(b []byte) float32 { return decodeUint8(b[0]) }, nil
	case 16:
		return decodeInt16, nil
	case 24:
		return decodePacked24, nil
	case 32:
		if formatTag == FormatIEEEFloat {
			return decodeFloat32, nil
		}

		return decodePacked32, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}
}

// decodeSamples converts a data chunk payload into interleaved normalized
// samples. Bytes of a trailing partial frame are ignored.
func decodeSamples(f *Format, raw []byte) ([]float32, error) {
	if f == nil {
		return nil, ErrMissingFormatChunk
	}

	decodeF, err := sampleDecodeFunc(f.BitsPerSample, f.FormatTag)
	if err != nil {
		return nil, err
	}

	if f.NumChannels == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, f.NumChannels)
	}

	bPerSample := f.BytesPerSample()
	channels := int(f.NumChannels)
	frames := len(raw) / channels / bPerSample

	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = decodeF(raw[i*bPerSample : (i+1)*bPerSample])
	}

	return samples, nil
}
