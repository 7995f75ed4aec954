// internal/writers/sink.go
package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Sink is the two-variant writable destination: a file path or a stdout
// stream. The file variant writes to a uniquely named temp file in the
// destination directory and renames it over the destination on Commit, so a
// failed run never destroys prior content. A ".gz" destination is
// gzip-compressed. The stream variant just buffers.
type Sink struct {
	w    *bufio.Writer
	gz   *gzip.Writer
	file *os.File
	tmp  string
	dest string
	done bool
}

// NewSink opens a sink for path. Empty path or "-" selects the stream w.
func NewSink(path string, stream io.Writer) (*Sink, error) {
	if path == "" || path == "-" {
		return &Sink{w: bufio.NewWriter(stream)}, nil
	}
	dir, base := filepath.Dir(path), filepath.Base(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	s := &Sink{file: f, tmp: tmp, dest: path}
	if strings.HasSuffix(path, ".gz") {
		s.gz = gzip.NewWriter(f)
		s.w = bufio.NewWriter(s.gz)
	} else {
		s.w = bufio.NewWriter(f)
	}
	return s, nil
}

// Writer returns the destination to serialize into.
func (s *Sink) Writer() io.Writer { return s.w }

// Commit flushes everything and, for the file variant, atomically replaces
// the destination.
func (s *Sink) Commit() error {
	if s.done {
		return nil
	}
	s.done = true
	if err := s.w.Flush(); err != nil {
		s.cleanup()
		return err
	}
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			s.cleanup()
			return err
		}
	}
	if s.file == nil {
		return nil
	}
	if err := s.file.Close(); err != nil {
		_ = os.Remove(s.tmp)
		return err
	}
	return os.Rename(s.tmp, s.dest)
}

// Discard abandons the sink, removing any temp file. Safe after Commit.
func (s *Sink) Discard() {
	if s.done {
		return
	}
	s.done = true
	s.cleanup()
}

func (s *Sink) cleanup() {
	if s.file != nil {
		_ = s.file.Close()
		_ = os.Remove(s.tmp)
	}
}
