// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"faex/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { Usage(fs.Output(), name, fs) }
	return fs
}

// Usage prints the hand-written help block.
func Usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – extract regions from an indexed FASTA file\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s [flags] <sequence-file> <regions-file>\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  <sequence-file>             FASTA file; a companion .fai index is built when missing")
	fmt.Fprintln(out, "  <regions-file>              one region per line: name | name:pos | name:start-end,")
	fmt.Fprintln(out, "                              a leading '-' reverse-complements that region ('-' = stdin)")

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintln(out, "  -o, --output file           Write output here instead of stdout (.gz compresses)")
	fmt.Fprintf(out, "      --line-width int        FASTA body wrap width [%s]\n", def("line-width"))
	fmt.Fprintf(out, "  -m, --merge-contigs         Merge all extracted regions into one contig [%s]\n", def("merge-contigs"))
	fmt.Fprintln(out, "  -n, --contig-name string    Merged contig name (default: regions filename stem)")
	fmt.Fprintf(out, "  -g, --gap-size int          Gap of Ns inserted between merged sequences [%s]\n", def("gap-size"))

	fmt.Fprintln(out, "\nBehavior:")
	fmt.Fprintf(out, "  -t, --threads int           Concurrent region queries (0 or 1 = serial) [%s]\n", def("threads"))
	fmt.Fprintf(out, "      --strict                Treat malformed region lines as fatal [%s]\n", def("strict"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
