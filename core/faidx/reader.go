// core/faidx/reader.go
package faidx

import (
	"fmt"
	"io"
	"os"
)

// Reader answers seek-based range queries against an indexed FASTA file.
//
// Queries are stateless (name, start, end) → bytes calls over an io.ReaderAt,
// so a single Reader is safe for concurrent use.
type Reader struct {
	f   *os.File
	idx *Index
}

// NewReader wraps an open FASTA file and its index.
func NewReader(f *os.File, idx *Index) *Reader {
	return &Reader{f: f, idx: idx}
}

// Open loads (or builds) the index for path and opens the file for queries.
func Open(path string) (*Reader, error) {
	idx, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReader(f, idx), nil
}

// Index exposes the underlying index.
func (r *Reader) Index() *Index { return r.idx }

// Close releases the underlying file handle.
func (r *Reader) Close() error { return r.f.Close() }

// Get reads the 1-based inclusive range [start, end] of the named record,
// skipping line terminators. Coordinates outside 1..length fail with
// ErrRange; unknown names fail with ErrNotFound.
func (r *Reader) Get(name string, start, end int64) ([]byte, error) {
	e, ok := r.idx.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if start < 1 || end < start || end > e.Length {
		return nil, fmt.Errorf("%w: %s:%d-%d (record length %d)", ErrRange, name, start, end, e.Length)
	}
	if e.LineBases <= 0 || e.LineWidth < e.LineBases {
		return nil, fmt.Errorf("%w: bad index entry for %q", ErrFormat, name)
	}

	lb, lw := int64(e.LineBases), int64(e.LineWidth)
	startOff := e.Offset + (start-1)/lb*lw + (start-1)%lb
	endOff := e.Offset + (end-1)/lb*lw + (end-1)%lb + 1

	raw := make([]byte, endOff-startOff)
	n, err := r.f.ReadAt(raw, startOff)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	raw = raw[:n]

	want := int(end - start + 1)
	out := make([]byte, 0, want)
	for _, b := range raw {
		if b == '\n' || b == '\r' {
			continue
		}
		out = append(out, b)
	}
	if len(out) < want {
		return nil, fmt.Errorf("%w: record %q truncated on disk", ErrFormat, name)
	}
	return out[:want], nil
}

// GetAll reads the named record's whole sequence.
func (r *Reader) GetAll(name string) ([]byte, error) {
	e, ok := r.idx.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.Get(name, 1, e.Length)
}
