// core/faidx/index.go
package faidx

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrFormat indicates a FASTA or index file that violates the format
	// contract (inconsistent line widths, zero-length records, bad fields).
	ErrFormat = errors.New("malformed FASTA")
	// ErrNotFound indicates a sequence name absent from the index.
	ErrNotFound = errors.New("unknown sequence")
	// ErrRange indicates coordinates outside a record's bounds.
	ErrRange = errors.New("region out of range")
)

// Entry locates one record inside the FASTA file.
//
// Offset is the byte position of the first sequence byte (the byte after the
// header line). LineBases is the number of sequence symbols per full body
// line; LineWidth is the same line's on-disk width including the terminator.
// Any 1-based coordinate p maps to byte
//
//	Offset + (p-1)/LineBases*LineWidth + (p-1)%LineBases
type Entry struct {
	Name      string
	Length    int64
	Offset    int64
	LineBases int
	LineWidth int
}

// Index is the ordered set of entries for one FASTA file. It is read-only
// after construction.
type Index struct {
	entries []Entry
	byName  map[string]int
}

// Entries returns the entries in file order.
func (x *Index) Entries() []Entry { return x.entries }

// Lookup returns the entry for name.
func (x *Index) Lookup(name string) (Entry, bool) {
	i, ok := x.byName[name]
	if !ok {
		return Entry{}, false
	}
	return x.entries[i], true
}

func (x *Index) add(e Entry) error {
	if _, dup := x.byName[e.Name]; dup {
		return fmt.Errorf("%w: duplicate sequence name %q", ErrFormat, e.Name)
	}
	x.byName[e.Name] = len(x.entries)
	x.entries = append(x.entries, e)
	return nil
}

// IndexPath returns the companion index path for a FASTA file.
func IndexPath(fastaPath string) string { return fastaPath + ".fai" }

// Build scans the FASTA file at path once and produces its index.
// Compressed input cannot be indexed: byte offsets would not be seekable.
func Build(path string) (*Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var sig [2]byte
	if n, _ := fh.Read(sig[:]); n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return nil, fmt.Errorf("%w: %s is gzip-compressed; indexing needs the uncompressed file", ErrFormat, path)
	}
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return scan(bufio.NewReaderSize(fh, 1<<16), path)
}

func scan(br *bufio.Reader, path string) (*Index, error) {
	x := &Index{byName: make(map[string]int)}

	var (
		cur      *Entry
		offset   int64
		lineNo   int
		sawShort bool // a narrower (or blank) body line: must be the record's last
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		if cur.Length == 0 {
			return fmt.Errorf("%w: zero-length record %q in %s", ErrFormat, cur.Name, path)
		}
		if err := x.add(*cur); err != nil {
			return err
		}
		cur = nil
		return nil
	}

	for {
		raw, rerr := br.ReadBytes('\n')
		if len(raw) > 0 {
			lineNo++
			line := chomp(raw)
			switch {
			case len(line) > 0 && line[0] == '>':
				if err := finish(); err != nil {
					return nil, err
				}
				name, _ := splitHeader(line[1:])
				if name == "" {
					return nil, fmt.Errorf("%w: empty header at %s:%d", ErrFormat, path, lineNo)
				}
				cur = &Entry{Name: name, Offset: offset + int64(len(raw))}
				sawShort = false
			case cur == nil:
				if len(bytes.TrimSpace(line)) > 0 {
					return nil, fmt.Errorf("%w: sequence data before first header at %s:%d", ErrFormat, path, lineNo)
				}
			default:
				bases := len(line)
				if bases == 0 {
					sawShort = true
					break
				}
				if sawShort {
					return nil, fmt.Errorf("%w: inconsistent line width in record %q at %s:%d", ErrFormat, cur.Name, path, lineNo)
				}
				if cur.LineBases == 0 {
					cur.LineBases = bases
					cur.LineWidth = len(raw)
				} else if bases != cur.LineBases {
					if bases > cur.LineBases {
						return nil, fmt.Errorf("%w: inconsistent line width in record %q at %s:%d", ErrFormat, cur.Name, path, lineNo)
					}
					sawShort = true // shorter line is legal only as the record's last
				}
				cur.Length += int64(bases)
			}
		}
		offset += int64(len(raw))
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("read %s: %w", path, rerr)
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return x, nil
}

func chomp(raw []byte) []byte {
	raw = bytes.TrimSuffix(raw, []byte{'\n'})
	return bytes.TrimSuffix(raw, []byte{'\r'})
}

func splitHeader(hdr []byte) (name, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}

// ReadIndex parses the line-oriented five-field index format:
// name, length, offset, bases-per-line, bytes-per-line.
func ReadIndex(r io.Reader) (*Index, error) {
	x := &Index{byName: make(map[string]int)}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: index line %d has %d fields, want 5", ErrFormat, lineNo, len(fields))
		}
		length, err1 := strconv.ParseInt(fields[1], 10, 64)
		offset, err2 := strconv.ParseInt(fields[2], 10, 64)
		lineBases, err3 := strconv.Atoi(fields[3])
		lineWidth, err4 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil ||
			length <= 0 || offset < 0 || lineBases <= 0 || lineWidth < lineBases {
			return nil, fmt.Errorf("%w: bad index line %d", ErrFormat, lineNo)
		}
		e := Entry{Name: fields[0], Length: length, Offset: offset, LineBases: lineBases, LineWidth: lineWidth}
		if err := x.add(e); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return x, nil
}

// Write serializes the index in file order.
func (x *Index) Write(w io.Writer) error {
	for _, e := range x.entries {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			e.Name, e.Length, e.Offset, e.LineBases, e.LineWidth); err != nil {
			return err
		}
	}
	return nil
}

// Save persists the index next to its FASTA file.
func Save(fastaPath string, x *Index) error {
	fh, err := os.Create(IndexPath(fastaPath))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	if err := x.Write(bw); err != nil {
		_ = fh.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// Load returns the index for fastaPath, reading the companion file when it
// exists and is at least as new as the FASTA (modification times), else
// building and persisting a fresh one. A stale or unreadable companion is
// rebuilt. The bool reports whether a rebuild happened.
func Load(fastaPath string) (*Index, bool, error) {
	st, err := os.Stat(fastaPath)
	if err != nil {
		return nil, false, err
	}
	if fst, err := os.Stat(IndexPath(fastaPath)); err == nil && !fst.ModTime().Before(st.ModTime()) {
		fh, err := os.Open(IndexPath(fastaPath))
		if err == nil {
			x, rerr := ReadIndex(fh)
			_ = fh.Close()
			if rerr == nil {
				return x, false, nil
			}
		}
	}
	x, err := Build(fastaPath)
	if err != nil {
		return nil, false, err
	}
	if err := Save(fastaPath, x); err != nil {
		return nil, false, err
	}
	return x, true, nil
}
