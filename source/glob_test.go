package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("EID\n1\n"), 0644))
}

func TestExpandPatternsPlainPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papers.csv")
	writeFile(t, path)

	files, err := ExpandPatterns([]string{path})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0])
}

func TestExpandPatternsGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"))
	writeFile(t, filepath.Join(dir, "b.csv"))
	writeFile(t, filepath.Join(dir, "nested", "c.csv"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	files, err := ExpandPatterns([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = ExpandPatterns([]string{filepath.Join(dir, "**", "*.csv")})
	require.NoError(t, err)
	assert.Len(t, files, 3, "** should recurse into subdirectories")
}

func TestExpandPatternsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	writeFile(t, path)

	files, err := ExpandPatterns([]string{path, filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestExpandPatternsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ExpandPatterns([]string{filepath.Join(dir, "missing.csv")})
	assert.Error(t, err, "plain path that does not exist")

	_, err = ExpandPatterns([]string{dir})
	assert.Error(t, err, "directory instead of file")

	_, err = ExpandPatterns([]string{filepath.Join(dir, "*.csv")})
	assert.Error(t, err, "glob matching nothing overall")
}
