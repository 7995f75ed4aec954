// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"
)

// DefaultLineWidth is the body wrap width used when none is configured.
const DefaultLineWidth = 60

// Writer serializes Records in FASTA format with fixed-width body wrapping.
type Writer struct {
	w     io.Writer
	width int
}

// NewWriter returns a Writer wrapping sequence bodies at width bases per
// line. width <= 0 selects DefaultLineWidth.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultLineWidth
	}
	return &Writer{w: w, width: width}
}

// WriteRecord emits one record: a ">" header line followed by the wrapped
// sequence body. An empty sequence still gets its header line.
func (w *Writer) WriteRecord(r Record) error {
	if r.Description != "" {
		if _, err := fmt.Fprintf(w.w, ">%s %s\n", r.Name, r.Description); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w.w, ">%s\n", r.Name); err != nil {
			return err
		}
	}
	for off := 0; off < len(r.Seq); off += w.width {
		end := off + w.width
		if end > len(r.Seq) {
			end = len(r.Seq)
		}
		if _, err := w.w.Write(r.Seq[off:end]); err != nil {
			return err
		}
		if _, err := w.w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
