package riffwave

import (
	"bytes"
	"errors"
	"time"
)

var (
	// ErrNotRIFFWave is returned when the root chunk is not a RIFF container
	// with a WAVE form type.
	ErrNotRIFFWave = errors.New("not a RIFF/WAVE file")
	// ErrUnsupportedFormatTag is returned when the fmt chunk declares a format
	// tag other than PCM or IEEE float.
	ErrUnsupportedFormatTag = errors.New("unsupported format tag")
	// ErrUnsupportedBitDepth is returned when the bits per sample are not one
	// of 8, 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrMissingDataChunk is returned when the file has no data chunk.
	ErrMissingDataChunk = errors.New("data chunk not found")
	// ErrMissingFormatChunk is returned when a data chunk shows up before any
	// fmt chunk.
	ErrMissingFormatChunk = errors.New("data chunk found before fmt chunk")
	// ErrInvalidChannelCount is returned when the fmt chunk declares zero
	// channels.
	ErrInvalidChannelCount = errors.New("invalid channel count")
	// ErrTruncatedStream is returned when a chunk declares more bytes than
	// are left in the stream.
	ErrTruncatedStream = errors.New("truncated stream")
)

var (
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDInfo is the list type of an INFO list.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}
)

// sameID compares chunk IDs ignoring ASCII case.
func sameID(a, b [4]byte) bool {
	return bytes.EqualFold(a[:], b[:])
}

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}

func framesDuration(frames int, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	rate := int64(sampleRate)
	secs, rem := int64(frames)/rate, int64(frames)%rate

	return time.Duration(secs)*time.Second + time.Duration(rem)*time.Second/time.Duration(rate)
}
