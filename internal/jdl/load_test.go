package jdl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirParsesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enums.jdl"),
		[]byte("enum Status { OPEN, CLOSED }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.jdl"),
		[]byte("entity Task { status Status }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"),
		[]byte("entity NotParsed { x String }\n"), 0o644))

	doc, err := LoadDir(dir, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Entities.Len())
	assert.False(t, doc.Entities.Has("NotParsed"))

	// enum from one file classifies a field in another
	task, ok := doc.Entities.Get("Task")
	require.True(t, ok)
	assert.True(t, task.Fields[0].IsEnum)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.jdl")
	require.NoError(t, os.WriteFile(path, []byte("entity Foo { name String }"), 0o644))

	doc, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.True(t, doc.Entities.Has("Foo"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.jdl"), Options{})
	assert.Error(t, err)
}
