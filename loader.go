package riffwave

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-audio/riff"
)

// Loader decodes WAVE streams into Buffers.
// A Loader keeps no per-load state, one value can serve concurrent loads
// once all handlers are registered.
type Loader struct {
	logger *slog.Logger
	chunks *ChunkRegistry
}

var defaultLoader = NewLoader(nil)

// NewLoader creates a loader logging to logger. A nil logger discards
// everything.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Loader{
		logger: logger,
		chunks: newDefaultChunkRegistry(),
	}
}

// Register adds a chunk handler used by Inspect.
func (l *Loader) Register(handler ChunkHandler) {
	l.chunks.Register(handler)
}

// Load decodes the WAVE stream read from r. The whole stream is read into
// memory. name is copied to the returned buffer.
//
// The fmt chunk has to come before the data chunk. Only the first fmt and
// the first data chunk are used, every other chunk is skipped.
func Load(r io.Reader, name string) (*Buffer, error) {
	return defaultLoader.Load(r, name)
}

// LoadFile decodes the WAVE file at path and names the buffer after the
// file.
func LoadFile(path string) (*Buffer, error) {
	return defaultLoader.LoadFile(path)
}

// Inspect reports the chunk layout, format and INFO tags of the WAVE stream
// read from r without decoding the samples.
func Inspect(r io.Reader) (*Report, error) {
	return defaultLoader.Inspect(r)
}

// LoadFile decodes the WAVE file at path and names the buffer after the
// file.
func (l *Loader) LoadFile(path string) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return l.Load(file, filepath.Base(path))
}

// Load decodes the WAVE stream read from r, see the package level Load.
func (l *Loader) Load(r io.Reader, name string) (*Buffer, error) {
	root, err := readWaveRoot(r)
	if err != nil {
		return nil, err
	}

	var (
		format  *Format
		samples []float32
		decoded bool
	)

	it := root.Subchunks()

	for {
		chunk, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		l.logger.Debug("chunk", "name", name, "id", string(chunk.ID[:]), "size", chunk.Size, "offset", chunk.Offset)

		switch {
		case sameID(chunk.ID, riff.FmtID):
			if format != nil {
				continue
			}

			format, err = parseFormat(chunk)
			if err != nil {
				return nil, fmt.Errorf("failed to decode fmt chunk: %w", err)
			}

			if !format.Supported() {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormatTag, formatTagName(format.FormatTag))
			}
		case sameID(chunk.ID, riff.DataFormatID):
			if decoded {
				continue
			}

			samples, err = decodeSamples(format, chunk.Data)
			if err != nil {
				if errors.Is(err, ErrUnsupportedBitDepth) {
					l.logger.Error("unsupported bit depth", "name", name, "bits", format.BitsPerSample)
				}

				return nil, fmt.Errorf("failed to decode data chunk: %w", err)
			}

			decoded = true
		}
	}

	if !decoded {
		return nil, ErrMissingDataChunk
	}

	buf := &Buffer{
		Name:           name,
		SampleRate:     format.SampleRate,
		NumChannels:    format.NumChannels,
		Frames:         len(samples) / int(format.NumChannels),
		SourceBitDepth: int(format.BitsPerSample),
		Samples:        samples,
	}

	l.logger.Debug("loaded", "name", name, "frames", buf.Frames,
		"channels", buf.NumChannels, "sample_rate", buf.SampleRate)

	return buf, nil
}

// Inspect walks the WAVE stream read from r, see the package level Inspect.
func (l *Loader) Inspect(r io.Reader) (*Report, error) {
	root, err := readWaveRoot(r)
	if err != nil {
		return nil, err
	}

	rep := &Report{FormType: root.FormType}
	it := root.Subchunks()

	for {
		chunk, err := it.Next()
		if errors.Is(err, io.EOF) {
			return rep, nil
		}

		if err != nil {
			return nil, err
		}

		rep.Chunks = append(rep.Chunks, ChunkInfo{ID: chunk.ID, Size: chunk.Size, Offset: chunk.Offset})

		handled, err := l.chunks.Inspect(rep, chunk)
		if err != nil {
			return nil, err
		}

		l.logger.Debug("inspected chunk", "id", string(chunk.ID[:]), "size", chunk.Size, "handled", handled)
	}
}

func readWaveRoot(r io.Reader) (*Chunk, error) {
	root, err := readRoot(r)
	if err != nil {
		return nil, err
	}

	if !sameID(root.FormType, riff.WavFormatID) {
		return nil, fmt.Errorf("%w: form type %q", ErrNotRIFFWave, root.FormType[:])
	}

	return root, nil
}
