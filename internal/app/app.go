// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"faex-core/faidx"
	"faex-core/fasta"
	"faex-core/region"
	"faex/internal/cli"
	"faex/internal/extract"
	"faex/internal/version"
	"faex/internal/writers"
)

// RunContext drives one extraction run: load/build index, parse regions,
// extract, optionally merge, write. Exit codes: 0 ok, 1 runtime failure,
// 2 usage error, 3 output failure, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("faex")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "faex version %s\n", version.Version)
		return 0
	}

	level := slog.LevelInfo
	if opts.Quiet {
		level = slog.LevelError
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	idx, built, err := faidx.Load(opts.FastaFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if built {
		log.Info("built sequence index",
			"fasta", opts.FastaFile, "records", len(idx.Entries()))
	}

	fh, err := os.Open(opts.FastaFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	store := faidx.NewReader(fh, idx)
	defer store.Close()

	regions, skipped, err := region.ParseFile(opts.RegionsFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(skipped) > 0 {
		if opts.Strict {
			fmt.Fprintf(stderr, "%s:%d: %v\n", opts.RegionsFile, skipped[0].Line, skipped[0].Err)
			return 1
		}
		for _, sk := range skipped {
			log.Warn("skipping malformed region line",
				"file", opts.RegionsFile, "line", sk.Line, "text", sk.Text)
		}
	}

	rs, err := extract.Extract(parent, store, regions, extract.Options{
		Merge:   opts.Merge,
		Threads: opts.Threads,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	var records []fasta.Record
	if opts.Merge {
		name := opts.ContigName
		if name == "" {
			name = contigNameFrom(opts.RegionsFile)
		}
		records = []fasta.Record{extract.Merge(rs, name, opts.GapSize)}
	} else {
		for _, key := range rs.Keys() {
			records = append(records, fasta.Record{Name: key, Seq: rs.Get(key)})
		}
	}

	sink, err := writers.NewSink(opts.Output, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	w := fasta.NewWriter(sink.Writer(), opts.LineWidth)
	for _, rec := range records {
		if err := w.WriteRecord(rec); err != nil {
			sink.Discard()
			if writers.IsBrokenPipe(err) {
				return 0
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if err := sink.Commit(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// contigNameFrom derives the default merged-contig name from the regions
// file: its base name without the extension ("regions.txt.gz" → "regions").
func contigNameFrom(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "-" || base == "." {
		return "merged"
	}
	return base
}
