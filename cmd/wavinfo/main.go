// This tool prints the format, chunk layout and INFO tags of wav files.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/riffwave"
	"github.com/cwbudde/riffwave/internal/cli"
)

type options struct {
	Files   []string `arg:"" name:"file" help:"WAVE files to describe."`
	Chunks  bool     `help:"List every chunk of the file."`
	Info    bool     `help:"Print the LIST/INFO tags."`
	Verbose bool     `short:"v" help:"Log every chunk visited."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) error {
	var opts options

	done, err := cli.Parse(&opts, args, out, errOut,
		kong.Name("wavinfo"),
		kong.Description("Print the format, chunk layout and INFO tags of wav files."),
	)
	if err != nil || done {
		return err
	}

	loader := riffwave.NewLoader(cli.NewLogger(errOut, opts.Verbose))

	for _, path := range opts.Files {
		if err := describe(loader, path, opts, out); err != nil {
			return err
		}
	}

	return nil
}

func describe(loader *riffwave.Loader, path string, opts options, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rep, err := loader.Inspect(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Decode before printing so a file that can't be decoded prints nothing
	// but the error.
	buf, err := loader.Load(bytes.NewReader(data), filepath.Base(path))
	if err != nil {
		return fmt.Errorf("%s: %s is not decodable: %w", path, rep.Format, err)
	}

	cli.PrintHeader(out, path)
	cli.PrintKV(out, "Format", rep.Format)

	if opts.Chunks {
		cli.PrintHeader(out, "Chunks")

		for i, c := range rep.Chunks {
			fmt.Fprintf(out, "\tchunk [%d]:\t%s\n", i, c)
		}
	}

	if opts.Info {
		printInfo(out, rep.Info)
	}

	cli.PrintKV(out, "Frames", buf.Frames)
	cli.PrintKV(out, "Duration", buf.Duration())
	cli.PrintKV(out, "Peak", formatPeaks(buf.Peak()))

	return nil
}

func printInfo(out io.Writer, info *riffwave.Info) {
	cli.PrintHeader(out, "Info")

	if info.Empty() {
		fmt.Fprintln(out, "No metadata present")
		return
	}

	fields := []struct {
		key   string
		value string
	}{
		{"Artist", info.Artist},
		{"Title", info.Title},
		{"Comments", info.Comments},
		{"Copyright", info.Copyright},
		{"CreationDate", info.CreationDate},
		{"Engineer", info.Engineer},
		{"Technician", info.Technician},
		{"Genre", info.Genre},
		{"Keywords", info.Keywords},
		{"Medium", info.Medium},
		{"Product", info.Product},
		{"Subject", info.Subject},
		{"Software", info.Software},
		{"Source", info.Source},
		{"Location", info.Location},
		{"TrackNbr", info.TrackNbr},
	}

	for _, f := range fields {
		if f.value != "" {
			cli.PrintKV(out, f.key, f.value)
		}
	}
}

func formatPeaks(peaks []float32) string {
	parts := make([]string, len(peaks))
	for i, p := range peaks {
		parts[i] = fmt.Sprintf("ch%d %.4f", i, p)
	}

	return strings.Join(parts, ", ")
}
