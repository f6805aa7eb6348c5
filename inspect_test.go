package riffwave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

type testCartHandler struct {
	called bool
	size   int
}

func (h *testCartHandler) CanHandle(chunkID [4]byte, _ [4]byte) bool {
	return chunkID == [4]byte{'c', 'a', 'r', 't'}
}

func (h *testCartHandler) Inspect(_ *Report, ch *Chunk) error {
	h.called = true
	h.size = len(ch.Data)

	return nil
}

func infoList(entries ...testChunk) []byte {
	buf := bytes.NewBufferString("INFO")
	for _, e := range entries {
		buf.Write(encodeChunk(e.id, e.data))
	}

	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	raw := buildRIFF("RIFF", "WAVE",
		testChunk{"fmt ", fmtPayload(FormatPCM, 2, 48000, 24)},
		testChunk{"LIST", infoList(
			testChunk{"IART", []byte("artist\x00")},
			testChunk{"INAM", []byte("track title\x00")},
			testChunk{"itrk", []byte("42\x00")},
			testChunk{"ICMT", []byte("my comment")},
			testChunk{"XXXX", []byte("ignored")},
		)},
		testChunk{"data", make([]byte, 60)},
	)

	rep, err := Inspect(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if string(rep.FormType[:]) != "WAVE" {
		t.Fatalf("FormType=%q", rep.FormType[:])
	}

	if rep.Format == nil || rep.Format.BitsPerSample != 24 || rep.Format.NumChannels != 2 {
		t.Fatalf("unexpected format %v", rep.Format)
	}

	if rep.Frames != 10 {
		t.Fatalf("Frames=%d, want 10", rep.Frames)
	}

	ids := make([]string, 0, len(rep.Chunks))
	for _, c := range rep.Chunks {
		ids = append(ids, string(c.ID[:]))
	}

	if got := ids; len(got) != 3 || got[0] != "fmt " || got[1] != "LIST" || got[2] != "data" {
		t.Fatalf("chunk inventory=%q", got)
	}

	if rep.Chunks[0].Offset != 20 || rep.Chunks[0].Size != 16 {
		t.Fatalf("fmt inventory entry=%v", rep.Chunks[0])
	}

	if rep.Info == nil {
		t.Fatal("expected INFO tags")
	}

	want := Info{Artist: "artist", Title: "track title", TrackNbr: "42", Comments: "my comment"}
	if *rep.Info != want {
		t.Fatalf("Info=%+v, want %+v", *rep.Info, want)
	}
}

func TestInspectReportsUnsupportedFormat(t *testing.T) {
	raw := buildWave(0x0002, 1, 8000, 4, make([]byte, 32))

	rep, err := Inspect(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if rep.Format == nil || rep.Format.FormatTag != 2 {
		t.Fatalf("unexpected format %v", rep.Format)
	}

	if rep.Frames != 0 {
		t.Fatalf("Frames=%d, want 0 for an undecodable format", rep.Frames)
	}

	if rep.Info != nil || !rep.Info.Empty() {
		t.Fatal("expected no INFO tags")
	}
}

func TestInspectSkipsNonInfoLists(t *testing.T) {
	raw := buildRIFF("RIFF", "WAVE",
		testChunk{"LIST", append([]byte("adtl"), encodeChunk("labl", []byte{1, 0, 0, 0})...)},
	)

	rep, err := Inspect(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if rep.Info != nil {
		t.Fatalf("expected adtl list to be ignored, got %+v", rep.Info)
	}
}

func TestInspectErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"not wave", buildRIFF("RIFF", "AVI "), ErrNotRIFFWave},
		{"truncated INFO entry", buildRIFF("RIFF", "WAVE", testChunk{"LIST", append([]byte("INFO"), 'I', 'A', 'R', 'T', 9, 0, 0, 0, 'a')}), ErrTruncatedStream},
		{"short fmt", buildRIFF("RIFF", "WAVE", testChunk{"fmt ", make([]byte, 10)}), ErrTruncatedStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Inspect(bytes.NewReader(tt.in)); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoaderRegisterCustomHandler(t *testing.T) {
	h := &testCartHandler{}

	loader := NewLoader(nil)
	loader.Register(h)

	raw := buildRIFF("RIFF", "WAVE",
		testChunk{"fmt ", fmtPayload(FormatPCM, 1, 8000, 8)},
		testChunk{"cart", make([]byte, 11)},
		testChunk{"data", []byte{128}},
	)

	if _, err := loader.Inspect(bytes.NewReader(raw)); err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if !h.called || h.size != 11 {
		t.Fatalf("custom handler called=%t size=%d", h.called, h.size)
	}
}

func TestChunkRegistryUnknownChunk(t *testing.T) {
	registry := newDefaultChunkRegistry()

	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, 1234)

	handled, err := registry.Inspect(&Report{}, &Chunk{ID: [4]byte{'f', 'a', 'c', 't'}, Size: 4, Data: payload})
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if handled {
		t.Fatal("fact chunks have no built-in handler")
	}

	var nilRegistry *ChunkRegistry
	nilRegistry.Register(&testCartHandler{})

	if handled, _ := nilRegistry.Inspect(&Report{}, &Chunk{}); handled {
		t.Fatal("a nil registry handles nothing")
	}
}
