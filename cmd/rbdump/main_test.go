package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/assoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errout bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	cmd.SetArgs(append([]string{}, args...)) // never nil, or cobra reads os.Args
	err := cmd.Execute()
	return out.String(), err
}

const orderedFixture = `
entries:
  - {key: 4, value: "5"}
  - {key: 2, value: "3"}
  - {key: 3, value: "4"}
  - {key: 1, value: "2"}
  - {key: 5, value: "6"}
`

func TestOrderedText(t *testing.T) {
	path := writeFixture(t, orderedFixture)
	out, err := execute(t, "--plain", path)
	require.NoError(t, err)
	assert.Equal(t, "3=4\n  L 2=3\n    L 1=2\n  R 4=5\n    R 5=6\n", out)
}

func TestOrderedDelete(t *testing.T) {
	path := writeFixture(t, orderedFixture+"delete: [3, 1, 42]\n")
	out, err := execute(t, "--plain", "--format", "html", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "3=4")
	assert.NotContains(t, out, "1=2")
	assert.Contains(t, out, "5=6")
	assert.True(t, strings.HasPrefix(out, `<ul class="rbtree">`))
}

func TestIntervalQuery(t *testing.T) {
	path := writeFixture(t, `
intervals:
  - {lo: 0, hi: 10, value: foo}
  - {lo: 5, hi: 20, value: bar}
  - {lo: 30, hi: 40, value: gone}
delete:
  - {lo: 30, hi: 40}
query: {lo: 5, hi: 5}
`)
	out, err := execute(t, "--kind", "interval", "--format", "dot", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "strict digraph {"))
	assert.NotContains(t, out, "gone")
	assert.True(t, strings.HasSuffix(out, "matches for [5,5]: [bar foo]\n"))
}

func TestTrieDot(t *testing.T) {
	path := writeFixture(t, "words:\n  Aa: x\n  BB: y\n")
	out, err := execute(t, "-k", "trie", "-f", "dot", path)
	require.NoError(t, err)
	assert.Contains(t, out, "->")
	_, err = execute(t, "-k", "trie", path)
	assert.ErrorIs(t, err, assoc.ErrIllegalArguments)
}

func TestIllegalArguments(t *testing.T) {
	path := writeFixture(t, orderedFixture)
	_, err := execute(t, "--format", "xml", path)
	assert.ErrorIs(t, err, assoc.ErrIllegalArguments)
	_, err = execute(t, "--kind", "heap", path)
	assert.ErrorIs(t, err, assoc.ErrIllegalArguments)
	bad := writeFixture(t, "intervals:\n  - {lo: 3, hi: 1}\n")
	_, err = execute(t, "--kind", "interval", bad)
	assert.ErrorIs(t, err, assoc.ErrIllegalArguments)
	_, err = execute(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = execute(t)
	assert.Error(t, err, "fixture path is required")
}
