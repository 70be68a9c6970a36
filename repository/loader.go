// Package repository resolves and retrieves the module source a model class
// originates from: a local file path during development, or a URL to wherever
// the owning system staged the module.
package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/viant/afs"

	"github.com/modelbuilder/scriptgen/inspector/graph"
	"github.com/modelbuilder/scriptgen/inspector/python"
)

// Loader retrieves Python module source from a path or URL
type Loader struct {
	fs afs.Service
}

func NewLoader() *Loader {
	return &Loader{fs: afs.New()}
}

// Load fetches the raw module source. The read is scoped to this call; afs
// releases the underlying handle on all paths.
func (l *Loader) Load(ctx context.Context, URL string) ([]byte, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load module %s", URL)
	}
	return data, nil
}

// LoadModule fetches and inspects a module in one step
func (l *Loader) LoadModule(ctx context.Context, URL string, config *graph.Config) (*graph.File, error) {
	data, err := l.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	file, err := python.NewInspector(config).InspectSource(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to inspect module %s", URL)
	}
	file.Path = URL
	return file, nil
}
