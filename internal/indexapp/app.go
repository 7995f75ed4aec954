// internal/indexapp/app.go
package indexapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"faex-core/faidx"
	"faex/internal/cliutil"
	"faex/internal/version"
)

// Options holds the index tool's flags and arguments.
type Options struct {
	FastaFiles []string
	Force      bool
	Quiet      bool
	Version    bool
}

// RunContext builds or refreshes the companion index for each FASTA file.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("faex-index", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(fs.Output()) }

	var opts Options
	fs.BoolVar(&opts.Force, "force", false, "rebuild even when the index is fresh")
	fs.BoolVar(&opts.Force, "f", false, "alias of --force")
	fs.BoolVar(&opts.Quiet, "quiet", false, "suppress progress output")
	fs.BoolVar(&opts.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opts.Version, "version", false, "print version and exit")
	fs.BoolVar(&opts.Version, "v", false, "alias of --version")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "faex-index version %s\n", version.Version)
		return 0
	}
	opts.FastaFiles = append(posArgs, fs.Args()...)
	if len(opts.FastaFiles) == 0 {
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if opts.Quiet {
		level = slog.LevelError
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	for _, path := range opts.FastaFiles {
		if err := parent.Err(); err != nil {
			return 130
		}
		idx, built, err := load(path, opts.Force)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if built {
			log.Info("built sequence index", "fasta", path, "records", len(idx.Entries()))
		} else {
			log.Info("index up to date", "fasta", path, "records", len(idx.Entries()))
		}
	}
	return 0
}

func load(path string, force bool) (*faidx.Index, bool, error) {
	if force {
		idx, err := faidx.Build(path)
		if err != nil {
			return nil, false, err
		}
		return idx, true, faidx.Save(path, idx)
	}
	return faidx.Load(path)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "faex-index – build .fai companion indexes for FASTA files\n\n")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintln(out, "Usage:\n  faex-index [flags] <sequence-file>...")
	fmt.Fprintln(out, "\nFlags:")
	fmt.Fprintln(out, "  -f, --force                 Rebuild even when the index is fresh")
	fmt.Fprintln(out, "  -q, --quiet                 Suppress progress output")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
