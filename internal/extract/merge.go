// internal/extract/merge.go
package extract

import (
	"bytes"

	"faex-core/fasta"
)

// GapSymbol separates merged entries.
const GapSymbol = 'N'

// Merge joins the result set's buffers in first-seen order into a single
// contig, inserting gapSize filler symbols strictly between consecutive
// entries. An empty set yields one empty record that keeps the name.
func Merge(rs *ResultSet, name string, gapSize int) fasta.Record {
	var (
		buf bytes.Buffer
		gap []byte
	)
	if gapSize > 0 {
		gap = bytes.Repeat([]byte{GapSymbol}, gapSize)
	}
	for i, key := range rs.Keys() {
		if i > 0 && gap != nil {
			buf.Write(gap)
		}
		buf.Write(rs.Get(key))
	}
	return fasta.Record{Name: name, Seq: buf.Bytes()}
}
