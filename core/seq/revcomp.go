// core/seq/revcomp.go
package seq

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i) // unknown symbols pass through unchanged
	}
	pairs := map[byte]byte{
		'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
		'U': 'A',
		'R': 'Y', 'Y': 'R',
		'S': 'S', 'W': 'W',
		'K': 'M', 'M': 'K',
		'B': 'V', 'V': 'B',
		'D': 'H', 'H': 'D',
		'N': 'N',
	}
	for b, c := range pairs {
		complement[b] = c
		complement[b+'a'-'A'] = c + 'a' - 'A' // lowercase stays lowercase
	}
}

// Complement returns the IUPAC nucleotide complement of b, case-preserving.
func Complement(b byte) byte { return complement[b] }

// RevComp returns the reverse complement of s as a new slice.
func RevComp(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return out
}
