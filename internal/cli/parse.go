package cli

import (
	"io"

	"github.com/alecthomas/kong"
)

// Parse parses args into grammar with usage and errors written to out and
// errOut. It reports done when a flag such as --help has already produced
// the output and the command should stop. The process is never exited.
func Parse(grammar any, args []string, out, errOut io.Writer, options ...kong.Option) (done bool, err error) {
	exited := false

	options = append(options,
		kong.Writers(out, errOut),
		kong.UsageOnError(),
		kong.Exit(func(int) { exited = true }),
	)

	parser, err := kong.New(grammar, options...)
	if err != nil {
		return false, err
	}

	_, err = parser.Parse(args)
	if exited {
		return true, nil
	}

	return false, err
}
