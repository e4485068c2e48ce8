package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"deedles.dev/xgeom/geom"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEval(t *testing.T) {
	out, err := execute(t, "eval", "--op", "resize", "--type", "i8", "--rect", "-5,-5,5,5", "--size", "9")
	require.NoError(t, err)
	require.Equal(t, "((-4, -4), (4, 4))\n", out)

	out, err = execute(t, "eval", "--op", "checked-translate", "--type", "u8", "--point", "250,3", "--delta", "10,0")
	require.ErrorIs(t, err, geom.ErrOutOfRange)
	require.Contains(t, out, "(250, 3)")
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
operations:
  - name: grow
    op: inflate
    type: i16
    rect: [0, 0, 10, 10]
  - name: full
    op: inflate
    type: u8
    rect: [0, 0, 255, 1]
`), 0o644))

	out, err := execute(t, "run", path)
	require.ErrorContains(t, err, "1 of 2 operations failed")
	require.Contains(t, out, "grow\t((-1, -1), (11, 11))\n")
	require.Contains(t, out, "full\t((0, 0), (255, 1))\terror: ")
}

func TestDomains(t *testing.T) {
	out, err := execute(t, "domains")
	require.NoError(t, err)
	require.Contains(t, out, "18446744073709551615")
	require.Contains(t, out, "-9223372036854775808")
}
