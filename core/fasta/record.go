// core/fasta/record.go
package fasta

// Record is a single named sequence from a FASTA file.
type Record struct {
	Name        string
	Description string
	Seq         []byte
}
