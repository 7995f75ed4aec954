// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"faex/internal/cliutil"

	"faex-core/fasta"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Positional inputs
	FastaFile   string
	RegionsFile string

	// Output
	Output     string // path, "" or "-" = stdout
	LineWidth  int
	Merge      bool
	ContigName string
	GapSize    int

	// Behavior
	Threads int
	Strict  bool

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// argv may interleave flags and the two positional files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Output, "output", "", "write output here instead of stdout")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.IntVar(&opt.LineWidth, "line-width", fasta.DefaultLineWidth, "FASTA body wrap width")

	fs.BoolVar(&opt.Merge, "merge-contigs", false, "merge all extracted regions into one contig")
	fs.BoolVar(&opt.Merge, "m", false, "alias of --merge-contigs")
	fs.StringVar(&opt.ContigName, "contig-name", "", "merged contig name (default: regions filename stem)")
	fs.StringVar(&opt.ContigName, "n", "", "alias of --contig-name")
	fs.IntVar(&opt.GapSize, "gap-size", 0, "gap of Ns inserted between merged sequences")
	fs.IntVar(&opt.GapSize, "g", 0, "alias of --gap-size")

	fs.IntVar(&opt.Threads, "threads", 0, "concurrent region queries (0 or 1 = serial)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.BoolVar(&opt.Strict, "strict", false, "treat malformed region lines as fatal")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)

	if opt.Version {
		return opt, nil
	}
	switch len(posArgs) {
	case 2:
		opt.FastaFile, opt.RegionsFile = posArgs[0], posArgs[1]
	default:
		return opt, fmt.Errorf("expected <sequence-file> <regions-file>, got %d positional argument(s)", len(posArgs))
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.ContigName != "" && !o.Merge {
		return errors.New("--contig-name requires --merge-contigs")
	}
	if o.GapSize != 0 && !o.Merge {
		return errors.New("--gap-size requires --merge-contigs")
	}
	if o.GapSize < 0 {
		return errors.New("--gap-size must be ≥ 0")
	}
	if o.LineWidth < 1 {
		return errors.New("--line-width must be ≥ 1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.FastaFile == "-" {
		return errors.New("the sequence file must be seekable; stdin is not supported")
	}
	return nil
}
