// This tool converts a wav file into an aiff file stored in the same folder
// as the source, unless an output path is given.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/riffwave"
	"github.com/cwbudde/riffwave/internal/cli"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

type options struct {
	Input    string `arg:"" name:"input" help:"The wav file to convert."`
	Output   string `short:"o" help:"The aiff file to write, defaults to the input path with an .aif extension."`
	BitDepth int    `name:"bit-depth" help:"Bit depth of the aiff file (8, 16, 24 or 32), defaults to the source bit depth."`
	Verbose  bool   `short:"v" help:"Log every chunk visited."`
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
		kong.Name("wavtoaiff"),
		kong.Description("Convert a wav file into an aiff file."),
	)
	if err != nil || done {
		return err
	}

	sourcePath, err := expandHome(opts.Input)
	if err != nil {
		return err
	}

	loader := riffwave.NewLoader(cli.NewLogger(errOut, opts.Verbose))

	buf, err := loader.LoadFile(sourcePath)
	if err != nil {
		return err
	}

	ints, err := buf.IntBuffer(opts.BitDepth)
	if err != nil {
		return err
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".aif"
	}

	if err := writeAIFF(outPath, ints); err != nil {
		return err
	}

	cli.PrintSuccess(out, fmt.Sprintf("%s converted to %s", buf.Name, outPath))

	return nil
}

func writeAIFF(path string, buf *audio.IntBuffer) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels)

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close the aiff encoder: %w", err)
	}

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return filepath.Join(home, path[2:]), nil
}
