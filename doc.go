// Package riffwave reads RIFF/WAVE files into normalized float32 buffers.
//
// The package supports PCM integer (8/16/24/32-bit) and IEEE float (32-bit)
// data. Any other format tag is rejected. The whole data chunk is decoded in
// memory, samples stay interleaved by channel:
//
//	buf, err := riffwave.LoadFile("kick.wav")
//	if err != nil {
//		return err
//	}
//	fmt.Println(buf.NumChannels, buf.SampleRate, buf.Frames)
//
// The chunk order matters: the fmt chunk must come before the data chunk.
// Only the first fmt and the first data chunk are used.
//
// Inspect walks a file without decoding samples and reports its chunk
// layout, format and LIST/INFO tags.
package riffwave
