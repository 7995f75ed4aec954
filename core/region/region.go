// core/region/region.go
package region

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"faex-core/fasta"
)

// ErrParse indicates a region specification that does not match the grammar.
var ErrParse = errors.New("malformed region")

// Region names a record and an optional 1-based inclusive interval.
// Start == 0 means the whole record.
type Region struct {
	Name              string
	Start, End        int64
	ReverseComplement bool
}

// Whole reports whether the region covers the entire record.
func (r Region) Whole() bool { return r.Start == 0 }

func (r Region) String() string {
	s := r.Name
	if !r.Whole() {
		s = fmt.Sprintf("%s:%d-%d", r.Name, r.Start, r.End)
	}
	if r.ReverseComplement {
		return "-" + s
	}
	return s
}

// ParseLine parses one region specification:
//
//	[-]name | [-]name:position | [-]name:start-end
//
// A leading '-' sets the reverse-complement flag. Coordinates are positive
// integers with start <= end.
func ParseLine(s string) (Region, error) {
	var r Region
	if strings.HasPrefix(s, "-") {
		r.ReverseComplement = true
		s = s[1:]
	}
	if s == "" {
		return Region{}, fmt.Errorf("%w: empty specification", ErrParse)
	}
	name := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		name = s[:i]
		coords := s[i+1:]
		if name == "" {
			return Region{}, fmt.Errorf("%w: %q has no name", ErrParse, s)
		}
		var startText, endText string
		if j := strings.IndexByte(coords, '-'); j >= 0 {
			startText, endText = coords[:j], coords[j+1:]
		} else {
			startText, endText = coords, coords
		}
		start, err1 := strconv.ParseInt(startText, 10, 64)
		end, err2 := strconv.ParseInt(endText, 10, 64)
		if err1 != nil || err2 != nil || start < 1 || end < start {
			return Region{}, fmt.Errorf("%w: bad coordinates in %q", ErrParse, s)
		}
		r.Start, r.End = start, end
	}
	r.Name = name
	return r, nil
}

// Skipped records one input line rejected by ParseLine.
type Skipped struct {
	Line int
	Text string
	Err  error
}

// ParseAll parses every non-empty line of r, preserving input order and
// duplicates. Malformed lines are collected rather than failing the parse;
// the caller decides whether they are fatal.
func ParseAll(r io.Reader) ([]Region, []Skipped, error) {
	var (
		regions []Region
		skipped []Skipped
	)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		reg, err := ParseLine(text)
		if err != nil {
			skipped = append(skipped, Skipped{Line: lineNo, Text: text, Err: err})
			continue
		}
		regions = append(regions, reg)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read regions: %w", err)
	}
	return regions, skipped, nil
}

// ParseFile parses a regions list file ("-" for stdin, .gz supported).
func ParseFile(path string) ([]Region, []Skipped, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()
	return ParseAll(rc)
}
