package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWavFixture(t *testing.T, path string, data []int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func readAIFF(t *testing.T, path string) *audio.IntBuffer {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := aiff.NewDecoder(f)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}

	if int(dec.BitDepth) != 16 || int(dec.NumChans) != 2 || dec.SampleRate != 8000 {
		t.Fatalf("unexpected aiff header %d bits / %d ch / %d Hz", dec.BitDepth, dec.NumChans, dec.SampleRate)
	}

	return buf
}

func TestRunConverts(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tone.wav")
	samples := []int{0, 32767, -16384, 1000, -1000, 0}
	writeWavFixture(t, in, samples)

	var out, errOut bytes.Buffer
	if err := run([]string{in}, &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr %q)", err, errOut.String())
	}

	if !strings.Contains(out.String(), "tone.wav converted to") {
		t.Fatalf("unexpected output %q", out.String())
	}

	got := readAIFF(t, filepath.Join(dir, "tone.aif"))
	if len(got.Data) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(got.Data), len(samples))
	}

	for i := range samples {
		if got.Data[i] != samples[i] {
			t.Fatalf("sample[%d]=%d, want %d", i, got.Data[i], samples[i])
		}
	}
}

func TestRunOutputPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	dst := filepath.Join(dir, "custom.aiff")
	writeWavFixture(t, in, []int{1, 2, 3, 4})

	var out, errOut bytes.Buffer
	if err := run([]string{in, "-o", dst}, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("expected %s to exist: %v", dst, err)
	}

	if _, err := os.Stat(filepath.Join(dir, "in.aif")); !os.IsNotExist(err) {
		t.Fatalf("default output path should not be written, stat err %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	writeWavFixture(t, in, []int{1, 2})

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", nil},
		{"invalid path", []string{filepath.Join(dir, "nope.wav")}},
		{"bad bit depth", []string{in, "--bit-depth", "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := run(tt.args, &out, &errOut); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/music/a.wav")
	if err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(home, "music", "a.wav"); got != want {
		t.Fatalf("expandHome=%q, want %q", got, want)
	}

	if got, _ := expandHome("/abs/a.wav"); got != "/abs/a.wav" {
		t.Fatalf("expandHome left %q", got)
	}
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer

	if err := run([]string{"--help"}, &out, &errOut); err != nil {
		t.Fatalf("run --help: %v", err)
	}

	if !strings.Contains(out.String(), "Usage: wavtoaiff") {
		t.Fatalf("expected usage, got:\n%s", out.String())
	}
}
