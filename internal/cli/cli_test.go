package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const columnDoc = `{
  "id": "c1",
  "componentType": "ColumnComponent",
  "props": {"align": "left"},
  "children": [
    {"id": "t1", "componentType": "TextWidget", "props": {"text": "hi"}}
  ]
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cmpengine version "+Version)
}

func TestTypesListsBuiltins(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	for _, typ := range []string{"TextWidget", "ColumnComponent", "FooterText", "SearchWidget"} {
		assert.Contains(t, out, typ)
	}
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "--plain", "FooterText")
	require.NoError(t, err)
	assert.Contains(t, out, "Type: `FooterText`")
	assert.Contains(t, out, ".FooterText")

	_, err = run(t, "describe", "Nope")
	assert.Error(t, err)
}

func TestRenderToStdout(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "page.json", columnDoc)

	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<!-- @block-start type:ColumnComponent id:c1 -->")
	assert.Contains(t, out, "hi")

	out, err = run(t, "render", "--no-markers", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "@block-start")
}

func TestRenderOutDirKeepsNames(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", columnDoc)
	b := writeDoc(t, dir, "b.yaml", "id: f1\ncomponentType: FooterText\nprops:\n  text: bye\n")
	outDir := filepath.Join(dir, "out")

	_, err := run(t, "render", "-o", outDir, a, b)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(outDir, "b.html"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "bye")
	_, err = os.Stat(filepath.Join(outDir, "a.html"))
	assert.NoError(t, err)
}

func TestRenderRejectsUnknownMode(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "page.json", columnDoc)

	_, err := run(t, "render", "--mode", "bogus", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid mode "bogus"`)

	out, err := run(t, "render", "--mode", "live", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "@block-start")
}

func TestRenderMissingFile(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestStylesScoped(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "f.json", `{"componentType":"FooterText"}`)

	out, err := run(t, "styles", path)
	require.NoError(t, err)
	assert.Contains(t, out, ".ComponentEngine .FooterText")

	out, err = run(t, "styles", "-n", "", path)
	require.NoError(t, err)
	assert.NotContains(t, out, ".ComponentEngine")
}

func TestSealRoundTrip(t *testing.T) {
	t.Setenv("CMPENGINE_SERVER_KEY", "0123456789abcdef0123456789abcdef")
	path := writeDoc(t, t.TempDir(), "f.json", `{"id":"f1","componentType":"FooterText"}`)

	token, err := run(t, "seal", path)
	require.NoError(t, err)
	token = strings.TrimSpace(token)
	require.NotEmpty(t, token)

	out, err := run(t, "open", token)
	require.NoError(t, err)
	assert.Contains(t, out, `"componentType": "FooterText"`)
}
