// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Bool("merge-contigs", false, "")
	fs.Bool("m", false, "")
	fs.String("output", "", "")
	fs.String("o", "", "")
	fs.Int("g", 0, "")
	return fs
}

func TestSplitInterleaved(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"ref.fa", "-m", "-g", "3", "regions.txt", "-o", "out.fa"})
	wantFlags := []string{"-m", "-g", "3", "-o", "out.fa"}
	wantPos := []string{"ref.fa", "regions.txt"}
	if !reflect.DeepEqual(flags, wantFlags) {
		t.Errorf("flags = %v, want %v", flags, wantFlags)
	}
	if !reflect.DeepEqual(pos, wantPos) {
		t.Errorf("pos = %v, want %v", pos, wantPos)
	}
}

func TestSplitEqualsForm(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--output=out.fa", "ref.fa", "regions.txt"})
	if !reflect.DeepEqual(flags, []string{"--output=out.fa"}) {
		t.Errorf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"ref.fa", "regions.txt"}) {
		t.Errorf("pos = %v", pos)
	}
}

func TestSplitDoubleDash(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"-m", "--", "-weird.fa", "regions.txt"})
	if !reflect.DeepEqual(flags, []string{"-m"}) {
		t.Errorf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"-weird.fa", "regions.txt"}) {
		t.Errorf("pos = %v", pos)
	}
}

func TestSplitLoneDashIsPositional(t *testing.T) {
	fs := newFS()
	_, pos := SplitFlagsAndPositionals(fs, []string{"ref.fa", "-"})
	if !reflect.DeepEqual(pos, []string{"ref.fa", "-"}) {
		t.Errorf("pos = %v", pos)
	}
}
