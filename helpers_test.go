package riffwave

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

type testChunk struct {
	id   string
	data []byte
}

// encodeChunk writes a chunk header, its payload and the pad byte of odd
// payloads.
func encodeChunk(id string, data []byte) []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

func buildRIFF(tag, form string, chunks ...testChunk) []byte {
	body := bytes.NewBufferString(form)
	for _, ch := range chunks {
		body.Write(encodeChunk(ch.id, ch.data))
	}

	return encodeChunk(tag, body.Bytes())
}

func fmtPayload(formatTag, channels uint16, sampleRate uint32, bits uint16) []byte {
	blockAlign := channels * (bits / 8)

	buf := bytes.NewBuffer(nil)
	binary.Write(buf, binary.LittleEndian, formatTag)
	binary.Write(buf, binary.LittleEndian, channels)
	binary.Write(buf, binary.LittleEndian, sampleRate)
	binary.Write(buf, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	return buf.Bytes()
}

func buildWave(formatTag, channels uint16, sampleRate uint32, bits uint16, data []byte) []byte {
	return buildRIFF("RIFF", "WAVE",
		testChunk{"fmt ", fmtPayload(formatTag, channels, sampleRate, bits)},
		testChunk{"data", data},
	)
}

func int16Bytes(samples ...int16) []byte {
	buf := bytes.NewBuffer(nil)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func float32Bytes(samples ...float32) []byte {
	buf := bytes.NewBuffer(nil)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func assertFloat32SlicesEqual(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range want {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("sample[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}
