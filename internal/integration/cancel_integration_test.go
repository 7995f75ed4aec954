// internal/integration/cancel_integration_test.go
package integration

import (
	"context"
	"io"
	"testing"

	"faex/internal/app"

	"github.com/stretchr/testify/require"
)

func TestCancelledContextExit130(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">chr1\nACGTACGT\n")
	rg := write(t, dir, "regions.txt", "chr1:1-4\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{fa, rg}, io.Discard, io.Discard)
	require.Equal(t, 130, code)
}
