package python_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/modelbuilder/scriptgen/inspector/graph"
	"github.com/modelbuilder/scriptgen/inspector/python"
)

func TestImports(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    []graph.Import
		wantErr error
	}{
		{
			name: "plain dotted import",
			src:  "import torch.nn.functional\n",
			want: []graph.Import{
				{Name: []string{"torch", "nn", "functional"}},
			},
		},
		{
			name: "aliased import",
			src:  "import pandas as pd\n",
			want: []graph.Import{
				{Name: []string{"pandas"}, Alias: "pd"},
			},
		},
		{
			name: "multi-name import",
			src:  "import os, sys\n",
			want: []graph.Import{
				{Name: []string{"os"}},
				{Name: []string{"sys"}},
			},
		},
		{
			name: "from import",
			src:  "from torch.utils.data import DataLoader\n",
			want: []graph.Import{
				{Module: []string{"torch", "utils", "data"}, Name: []string{"DataLoader"}},
			},
		},
		{
			name: "from import with alias",
			src:  "from torch.utils.data import DataLoader as Loader\n",
			want: []graph.Import{
				{Module: []string{"torch", "utils", "data"}, Name: []string{"DataLoader"}, Alias: "Loader"},
			},
		},
		{
			name: "from import multiple names",
			src:  "from a.b import c as d, e\n",
			want: []graph.Import{
				{Module: []string{"a", "b"}, Name: []string{"c"}, Alias: "d"},
				{Module: []string{"a", "b"}, Name: []string{"e"}},
			},
		},
		{
			name: "relative import",
			src:  "from .serializers import pandas\n",
			want: []graph.Import{
				{Module: []string{".serializers"}, Name: []string{"pandas"}},
			},
		},
		{
			name: "bare relative import",
			src:  "from . import base\n",
			want: []graph.Import{
				{Module: []string{"."}, Name: []string{"base"}},
			},
		},
		{
			name: "wildcard import",
			src:  "from torch import *\n",
			want: []graph.Import{
				{Module: []string{"torch"}, Name: []string{"*"}},
			},
		},
		{
			name: "future import",
			src:  "from __future__ import annotations\n",
			want: []graph.Import{
				{Module: []string{"__future__"}, Name: []string{"annotations"}},
			},
		},
		{
			name: "skips non-import and nested statements",
			src: `x = 1
import os

def helper():
    import json
    return json
`,
			want: []graph.Import{
				{Name: []string{"os"}},
			},
		},
		{
			name: "source order is preserved",
			src: `import os
from pandas import DataFrame
import torch
`,
			want: []graph.Import{
				{Name: []string{"os"}},
				{Module: []string{"pandas"}, Name: []string{"DataFrame"}},
				{Name: []string{"torch"}},
			},
		},
		{
			name:    "invalid syntax",
			src:     "def broken(:\n",
			wantErr: python.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := python.Imports([]byte(tt.src))
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.want, got)
		})
	}
}

func TestImports_Restartable(t *testing.T) {
	src := []byte("import os\nfrom a.b import c\n")
	first, err := python.Imports(src)
	assert.NoError(t, err)
	second, err := python.Imports(src)
	assert.NoError(t, err)
	assert.EqualValues(t, first, second)
}
