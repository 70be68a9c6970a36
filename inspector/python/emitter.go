package python

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/modelbuilder/scriptgen/inspector/graph"
)

// ErrMalformedImport indicates an import record that cannot be rendered
// into valid Python syntax
var ErrMalformedImport = errors.New("malformed import record")

type Emitter struct{}

// Emit reconstructs Python module text from a parsed file
func (e *Emitter) Emit(file *graph.File) ([]byte, error) {
	builder := &strings.Builder{}

	for _, imp := range file.Imports {
		line, err := RenderImport(imp)
		if err != nil {
			return nil, err
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	if len(file.Imports) > 0 {
		builder.WriteString("\n")
	}

	for _, class := range file.Classes {
		if class.Location != nil && class.Location.Raw != "" {
			builder.WriteString(class.Location.Raw)
			builder.WriteString("\n\n")
		}
	}

	for _, fn := range file.Functions {
		if fn.Location != nil && fn.Location.Raw != "" {
			builder.WriteString(fn.Location.Raw)
			builder.WriteString("\n\n")
		}
	}

	return []byte(builder.String()), nil
}

// RenderImport renders a single import record as a syntactically valid
// Python import statement. Records that cannot produce valid syntax fail
// with ErrMalformedImport rather than emitting broken text.
func RenderImport(imp graph.Import) (string, error) {
	if len(imp.Name) == 0 || imp.Name[0] == "" {
		return "", errors.Wrap(ErrMalformedImport, "empty imported name")
	}
	name := strings.Join(imp.Name, ".")

	if len(imp.Module) == 0 {
		line := "import " + name
		if imp.Alias != "" {
			line += " as " + imp.Alias
		}
		return line, nil
	}

	module := strings.Join(imp.Module, ".")
	if module == "" {
		return "", errors.Wrap(ErrMalformedImport, "empty source module")
	}
	if name == "*" {
		if imp.Alias != "" {
			return "", errors.Wrap(ErrMalformedImport, "wildcard import cannot be aliased")
		}
		return "from " + module + " import *", nil
	}
	if len(imp.Name) > 1 {
		// `from a import b.c` is not importable syntax
		return "", errors.Wrapf(ErrMalformedImport, "dotted name %q in from-import", name)
	}

	line := "from " + module + " import " + name
	if imp.Alias != "" {
		line += " as " + imp.Alias
	}
	return line, nil
}
