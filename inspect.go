package riffwave

import (
	"fmt"

	"github.com/go-audio/riff"
)

// Report describes the layout of a WAVE file without its samples.
type Report struct {
	FormType [4]byte
	// Format is the first fmt chunk, nil if there is none. It is reported
	// even when the format tag can't be decoded.
	Format *Format
	// Frames is computed from the first data chunk when the format allows it.
	Frames int
	// Chunks lists every top level chunk in file order.
	Chunks []ChunkInfo
	// Info is nil when the file has no LIST/INFO chunk.
	Info *Info

	dataSeen bool
}

// ChunkInfo is an inventory entry of a Report.
type ChunkInfo struct {
	ID     [4]byte
	Size   uint32
	Offset int64
}

func (c ChunkInfo) String() string {
	return fmt.Sprintf("%q %d bytes @ %d", c.ID[:], c.Size, c.Offset)
}

// ChunkHandler interprets chunks while a file is inspected.
// listType is only set for LIST chunks.
type ChunkHandler interface {
	CanHandle(chunkID [4]byte, listType [4]byte) bool
	Inspect(rep *Report, ch *Chunk) error
}

// ChunkRegistry resolves chunks to handlers.
type ChunkRegistry struct {
	handlers []ChunkHandler
}

func newDefaultChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		handlers: []ChunkHandler{
			&fmtChunkHandler{},
			&dataChunkHandler{},
			&infoChunkHandler{},
		},
	}
}

// Register appends a handler to the registry. The first matching handler
// wins, so handlers registered later can't replace the built-in ones.
func (r *ChunkRegistry) Register(handler ChunkHandler) {
	if r == nil || handler == nil {
		return
	}

	r.handlers = append(r.handlers, handler)
}

// Inspect dispatches a chunk to the first matching handler.
func (r *ChunkRegistry) Inspect(rep *Report, ch *Chunk) (bool, error) {
	if r == nil || ch == nil {
		return false, nil
	}

	lt := listType(ch)

	for _, handler := range r.handlers {
		if handler.CanHandle(ch.ID, lt) {
			if err := handler.Inspect(rep, ch); err != nil {
				return true, fmt.Errorf("chunk handler for %q failed: %w", ch.ID[:], err)
			}

			return true, nil
		}
	}

	return false, nil
}

type fmtChunkHandler struct{}

func (h *fmtChunkHandler) CanHandle(chunkID [4]byte, _ [4]byte) bool {
	return sameID(chunkID, riff.FmtID)
}

func (h *fmtChunkHandler) Inspect(rep *Report, ch *Chunk) error {
	if rep.Format != nil {
		return nil
	}

	f, err := parseFormat(ch)
	if err != nil {
		return err
	}

	rep.Format = f

	return nil
}

type dataChunkHandler struct{}

func (h *dataChunkHandler) CanHandle(chunkID [4]byte, _ [4]byte) bool {
	return sameID(chunkID, riff.DataFormatID)
}

func (h *dataChunkHandler) Inspect(rep *Report, ch *Chunk) error {
	if rep.dataSeen {
		return nil
	}

	rep.dataSeen = true

	f := rep.Format
	if !f.Supported() || f.NumChannels == 0 || f.BytesPerSample() == 0 {
		return nil
	}

	rep.Frames = len(ch.Data) / int(f.NumChannels) / f.BytesPerSample()

	return nil
}

type infoChunkHandler struct{}

func (h *infoChunkHandler) CanHandle(chunkID [4]byte, listType [4]byte) bool {
	return sameID(chunkID, CIDList) && listType == CIDInfo
}

func (h *infoChunkHandler) Inspect(rep *Report, ch *Chunk) error {
	if rep.Info == nil {
		rep.Info = &Info{}
	}

	return decodeInfoList(ch, rep.Info)
}
