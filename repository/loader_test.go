package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/modelbuilder/scriptgen/inspector/python"
	"github.com/modelbuilder/scriptgen/repository"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trainer.py")
	src := []byte("import torch\n\nclass MyModel:\n    def fit(self):\n        pass\n")
	assert.NoError(t, os.WriteFile(path, src, 0644))

	loader := repository.NewLoader()
	data, err := loader.Load(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, src, data)

	_, err = loader.Load(context.Background(), filepath.Join(dir, "missing.py"))
	assert.Error(t, err)
}

func TestLoader_LoadModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trainer.py")
	src := []byte("import torch\n\nclass MyModel:\n    def fit(self):\n        pass\n")
	assert.NoError(t, os.WriteFile(path, src, 0644))

	file, err := repository.NewLoader().LoadModule(context.Background(), path, nil)
	assert.NoError(t, err)
	assert.Equal(t, path, file.Path)
	assert.Len(t, file.Imports, 1)
	assert.NotNil(t, file.LookupClass("MyModel"))
}

func TestLoader_LoadModuleInvalidSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.py")
	assert.NoError(t, os.WriteFile(path, []byte("class Broken(\n"), 0644))

	_, err := repository.NewLoader().LoadModule(context.Background(), path, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, python.ErrParse))
}
