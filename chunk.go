package riffwave

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Chunk is one tagged, length-prefixed node of a RIFF file.
// Data is a view into the buffer the stream was read into; nothing is
// copied until a decoder reads it.
type Chunk struct {
	ID [4]byte
	// FormType is only set on RIFF containers (e.g. WAVE).
	FormType [4]byte
	// Size is the declared size. The pad byte following an odd payload is
	// never counted.
	Size uint32
	// Offset is the position of Data within the stream.
	Offset int64
	// Data is the payload. For containers it starts after the form type.
	Data []byte
}

// IsContainer reports whether the chunk holds subchunks.
func (c *Chunk) IsContainer() bool {
	return c != nil && sameID(c.ID, riff.RiffID)
}

// Subchunks returns an iterator over the chunks stored in the payload.
func (c *Chunk) Subchunks() *ChunkIterator {
	if c == nil {
		return newChunkIterator(nil, 0)
	}

	return newChunkIterator(c.Data, c.Offset)
}

// riffChunk exposes the payload as a go-audio riff chunk.
func (c *Chunk) riffChunk() *riff.Chunk {
	return &riff.Chunk{
		ID:   c.ID,
		Size: len(c.Data),
		R:    bytes.NewReader(c.Data),
	}
}

// ChunkIterator yields sibling chunks in file order. It can't be rewound.
type ChunkIterator struct {
	buf    []byte
	base   int64
	r      *bytes.Reader
	parser *riff.Parser
	err    error
}

func newChunkIterator(buf []byte, base int64) *ChunkIterator {
	r := bytes.NewReader(buf)

	return &ChunkIterator{
		buf:    buf,
		base:   base,
		r:      r,
		parser: riff.New(r),
	}
}

// Next returns the next chunk or io.EOF once the payload is exhausted.
// After the first error every call returns that same error.
func (it *ChunkIterator) Next() (*Chunk, error) {
	if it.err != nil {
		return nil, it.err
	}

	chunk, err := it.readChunk()
	if err != nil {
		it.err = err
		return nil, err
	}

	return chunk, nil
}

func (it *ChunkIterator) readChunk() (*Chunk, error) {
	if it.r.Len() == 0 {
		return nil, io.EOF
	}

	if it.r.Len() < 8 {
		return nil, fmt.Errorf("%w: %d byte chunk header at offset %d",
			ErrTruncatedStream, it.r.Len(), it.base+it.pos())
	}

	id, size, err := it.parser.IDnSize()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTruncatedStream
		}

		return nil, fmt.Errorf("failed to read chunk header: %w", err)
	}

	start := it.pos()
	if int64(size) > int64(it.r.Len()) {
		return nil, fmt.Errorf("%w: chunk %q declares %d bytes, %d left",
			ErrTruncatedStream, id[:], size, it.r.Len())
	}

	chunk := &Chunk{
		ID:     id,
		Size:   size,
		Offset: it.base + start,
		Data:   it.buf[start : start+int64(size)],
	}

	// RIFF chunks are word aligned. A missing pad byte at the very end of
	// the payload is tolerated.
	skip := int64(size)
	if size%2 == 1 && int64(it.r.Len()) > skip {
		skip++
	}

	if _, err := it.r.Seek(skip, io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("failed to skip chunk %q: %w", id[:], err)
	}

	if chunk.IsContainer() {
		if size < 4 {
			return nil, fmt.Errorf("%w: %q chunk without form type", ErrTruncatedStream, id[:])
		}

		copy(chunk.FormType[:], chunk.Data[:4])
		chunk.Data = chunk.Data[4:]
		chunk.Offset += 4
	}

	return chunk, nil
}

func (it *ChunkIterator) pos() int64 {
	return it.r.Size() - int64(it.r.Len())
}

// readRoot reads the whole stream and returns its first chunk, which must be
// a RIFF container.
func readRoot(r io.Reader) (*Chunk, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}

	if len(buf) < 4 || !sameID([4]byte(buf[:4]), riff.RiffID) {
		return nil, fmt.Errorf("%w: missing RIFF header", ErrNotRIFFWave)
	}

	root, err := newChunkIterator(buf, 0).Next()
	if err != nil {
		return nil, fmt.Errorf("failed to read root chunk: %w", err)
	}

	return root, nil
}
