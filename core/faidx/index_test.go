// core/faidx/index_test.go
package faidx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestBuildOffsets(t *testing.T) {
	path := writeFasta(t, ">chr1 first\nACGTAC\nGTAC\n>chr2\nGGGG\n")
	x, err := Build(path)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Name: "chr1", Length: 10, Offset: 12, LineBases: 6, LineWidth: 7},
		{Name: "chr2", Length: 4, Offset: 30, LineBases: 4, LineWidth: 5},
	}, x.Entries())
}

func TestBuildCRLF(t *testing.T) {
	path := writeFasta(t, ">chr1\r\nACGT\r\nAC\r\n")
	x, err := Build(path)
	require.NoError(t, err)
	e, ok := x.Lookup("chr1")
	require.True(t, ok)
	require.Equal(t, Entry{Name: "chr1", Length: 6, Offset: 7, LineBases: 4, LineWidth: 6}, e)
}

func TestBuildNoTrailingNewline(t *testing.T) {
	path := writeFasta(t, ">chr1\nACGT\nAC")
	x, err := Build(path)
	require.NoError(t, err)
	e, _ := x.Lookup("chr1")
	require.Equal(t, int64(6), e.Length)
}

func TestBuildRejectsWiderLine(t *testing.T) {
	path := writeFasta(t, ">chr1\nACG\nACGTA\n")
	_, err := Build(path)
	require.ErrorIs(t, err, ErrFormat)
}

func TestBuildRejectsShortLineMidRecord(t *testing.T) {
	path := writeFasta(t, ">chr1\nACGTA\nAC\nACGTA\n")
	_, err := Build(path)
	require.ErrorIs(t, err, ErrFormat)
}

func TestBuildRejectsZeroLengthRecord(t *testing.T) {
	path := writeFasta(t, ">empty\n>chr1\nACGT\n")
	_, err := Build(path)
	require.ErrorIs(t, err, ErrFormat)
}

func TestBuildRejectsDuplicateName(t *testing.T) {
	path := writeFasta(t, ">chr1\nACGT\n>chr1\nGGGG\n")
	_, err := Build(path)
	require.ErrorIs(t, err, ErrFormat)
}

func TestBuildRejectsBodyBeforeHeader(t *testing.T) {
	path := writeFasta(t, "ACGT\n>chr1\nACGT\n")
	_, err := Build(path)
	require.ErrorIs(t, err, ErrFormat)
}

func TestBuildRejectsGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	// gzip magic followed by junk; Build must refuse before parsing.
	require.NoError(t, os.WriteFile(path, []byte{0x1f, 0x8b, 0x08, 0x00}, 0o644))
	_, err := Build(path)
	require.ErrorIs(t, err, ErrFormat)
}

func TestIndexRoundTrip(t *testing.T) {
	path := writeFasta(t, ">chr1 first\nACGTAC\nGTAC\n>chr2\nGGGG\n")
	x, err := Build(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, x.Write(&buf))
	y, err := ReadIndex(&buf)
	require.NoError(t, err)
	require.Equal(t, x.Entries(), y.Entries())
}

func TestReadIndexRejectsBadLines(t *testing.T) {
	for _, text := range []string{
		"chr1\t10\t6\n",         // field count
		"chr1\tten\t6\t6\t7\n",  // non-numeric
		"chr1\t0\t6\t6\t7\n",    // zero length
		"chr1\t10\t6\t6\t5\n",   // width < bases
		"chr1\t4\t6\t4\t5\nchr1\t4\t6\t4\t5\n", // duplicate
	} {
		_, err := ReadIndex(bytes.NewBufferString(text))
		require.ErrorIs(t, err, ErrFormat, "input %q", text)
	}
}

func TestLoadBuildsAndReuses(t *testing.T) {
	path := writeFasta(t, ">chr1\nACGT\n")

	x, built, err := Load(path)
	require.NoError(t, err)
	require.True(t, built)
	require.FileExists(t, IndexPath(path))

	y, built, err := Load(path)
	require.NoError(t, err)
	require.False(t, built)
	require.Equal(t, x.Entries(), y.Entries())
}

func TestLoadRebuildsStaleIndex(t *testing.T) {
	path := writeFasta(t, ">chr1\nACGT\n")
	_, _, err := Load(path)
	require.NoError(t, err)

	// Make the companion older than the FASTA.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(IndexPath(path), old, old))

	_, built, err := Load(path)
	require.NoError(t, err)
	require.True(t, built)
}

func TestLoadRebuildsCorruptIndex(t *testing.T) {
	path := writeFasta(t, ">chr1\nACGT\n")
	require.NoError(t, os.WriteFile(IndexPath(path), []byte("not an index\n"), 0o644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(IndexPath(path), future, future))

	x, built, err := Load(path)
	require.NoError(t, err)
	require.True(t, built)
	e, ok := x.Lookup("chr1")
	require.True(t, ok)
	require.Equal(t, int64(4), e.Length)
}
