package model

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSourceUnavailable indicates a required method whose source text cannot
// be retrieved
var ErrSourceUnavailable = errors.New("method source unavailable")

// SourceAccumulator collects the lines of a single class definition. The
// header is always line 0; method bodies are appended in capture order and
// never reordered.
type SourceAccumulator struct {
	lines []string
}

// NewSourceAccumulator starts a class definition with its header line
func NewSourceAccumulator(className, baseType string) *SourceAccumulator {
	return &SourceAccumulator{
		lines: []string{fmt.Sprintf("class %s(%s):", className, baseType)},
	}
}

// AddMethod appends a method's source, split into lines
func (s *SourceAccumulator) AddMethod(source string) {
	s.lines = append(s.lines, strings.Split(source, "\n")...)
}

// Source returns the accumulated class definition
func (s *SourceAccumulator) Source() string {
	return strings.Join(s.lines, "\n")
}

// AssembleClassSource reconstructs the textual definition of the class: the
// header line followed by every registered method's source in registration
// order. Both entry-point methods must be present; each method is emitted
// exactly once.
func AssembleClassSource(def *Definition) (string, error) {
	for _, name := range []string{MethodFit, MethodPredict} {
		if def.Method(name) == nil {
			return "", errors.Wrapf(ErrSourceUnavailable, "entry point %s of %s", name, def.Name)
		}
	}

	accumulator := NewSourceAccumulator(def.Name, def.BaseType)
	for _, method := range def.Methods() {
		if strings.TrimSpace(method.Source) == "" {
			return "", errors.Wrapf(ErrSourceUnavailable, "method %s of %s", method.Name, def.Name)
		}
		accumulator.AddMethod(method.Source)
	}

	return accumulator.Source(), nil
}
