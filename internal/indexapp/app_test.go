// internal/indexapp/app_test.go
package indexapp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"faex-core/faidx"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestIndexBuilds(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "ref.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">chr1\nACGT\n"), 0o644))

	code, _, errText := run(t, fa)
	require.Equal(t, 0, code)
	require.Contains(t, errText, "built sequence index")
	require.FileExists(t, faidx.IndexPath(fa))

	code, _, errText = run(t, fa)
	require.Equal(t, 0, code)
	require.Contains(t, errText, "up to date")

	code, _, errText = run(t, "--force", fa)
	require.Equal(t, 0, code)
	require.Contains(t, errText, "built sequence index")
}

func TestIndexBadInput(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "bad.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">chr1\nACG\nACGTA\n"), 0o644))

	code, _, errText := run(t, fa)
	require.Equal(t, 1, code)
	require.Contains(t, errText, "malformed")
}

func TestIndexNoArgs(t *testing.T) {
	code, _, _ := run(t)
	require.Equal(t, 2, code)
}
