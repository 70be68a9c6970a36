package generator

import (
	"strings"

	"github.com/modelbuilder/scriptgen/inspector/graph"
)

// Script is the generated artifact: an ordered sequence of text lines,
// write-once and never mutated after composition
type Script struct {
	lines []string
}

func newScript(lines []string) *Script {
	return &Script{lines: lines}
}

// Lines returns a copy of the script lines
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Text returns the script as newline-joined text with no trailing separator
func (s *Script) Text() string {
	return strings.Join(s.lines, "\n")
}

func (s *Script) Bytes() []byte {
	return []byte(s.Text())
}

// Fingerprint returns a stable content hash of the script text, usable for
// caching and change detection
func (s *Script) Fingerprint() (uint64, error) {
	return graph.Hash(s.Bytes())
}
