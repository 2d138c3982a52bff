package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "currency.yaml"),
		[]byte("name: Currency\nvalues:\n  - USD\n  - EUR\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "country.yml"),
		[]byte("values:\n  - DE\n  - FR\n"), 0o644)) // name falls back to file name
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"),
		[]byte("not a catalog"), 0o644))

	cats, err := LoadCatalogs(dir)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	byName := map[string][]string{}
	for _, c := range cats {
		byName[c.Name] = c.Values
	}
	assert.Equal(t, []string{"USD", "EUR"}, byName["Currency"])
	assert.Equal(t, []string{"DE", "FR"}, byName["country"])
}

func TestLoadCatalogsMissingDir(t *testing.T) {
	_, err := LoadCatalogs(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadCatalogsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"),
		[]byte(": not yaml ["), 0o644))
	_, err := LoadCatalogs(dir)
	assert.Error(t, err)
}
