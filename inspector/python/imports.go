package python

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/modelbuilder/scriptgen/inspector/graph"
)

// ErrParse indicates module source that cannot be parsed as Python
var ErrParse = errors.New("source is not valid python")

// Imports extracts import records from Python module source.
// Each imported name yields one record, in source order; only top-level
// statements are considered. The function is pure over its input: calling it
// again restarts the sequence.
func Imports(src []byte) ([]graph.Import, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse source")
	}

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, errors.Wrap(ErrParse, "module source")
	}

	return collectImports(rootNode, src), nil
}

// collectImports walks the direct children of the module node and converts
// every import statement into records
func collectImports(rootNode *sitter.Node, src []byte) []graph.Import {
	var records []graph.Import

	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		childNode := rootNode.NamedChild(j)
		switch childNode.Type() {
		case "import_statement":
			records = append(records, parseImportStatement(childNode, src)...)
		case "import_from_statement", "future_import_statement":
			records = append(records, parseFromImportStatement(childNode, src)...)
		}
	}

	return records
}

// parseImportStatement handles `import a.b.c` and `import a.b as x, d`
func parseImportStatement(node *sitter.Node, src []byte) []graph.Import {
	var records []graph.Import

	for j := 0; j < int(node.ChildCount()); j++ {
		if node.FieldNameForChild(j) != "name" {
			continue
		}
		name, alias := importedName(node.Child(j), src)
		records = append(records, graph.Import{Name: name, Alias: alias})
	}

	return records
}

// parseFromImportStatement handles `from a.b import c as d, e` including
// relative modules, wildcard imports and `from __future__ import ...`
func parseFromImportStatement(node *sitter.Node, src []byte) []graph.Import {
	// future_import_statement has no module_name child, its module is implied
	module := []string{"__future__"}
	if moduleNode := node.ChildByFieldName("module_name"); moduleNode != nil {
		module = splitDotted(moduleNode.Content(src))
	}

	var records []graph.Import
	for j := 0; j < int(node.ChildCount()); j++ {
		childNode := node.Child(j)
		if childNode.Type() == "wildcard_import" {
			records = append(records, graph.Import{Module: module, Name: []string{"*"}})
			continue
		}
		if node.FieldNameForChild(j) != "name" {
			continue
		}
		name, alias := importedName(childNode, src)
		records = append(records, graph.Import{Module: module, Name: name, Alias: alias})
	}

	return records
}

// importedName resolves a dotted_name or aliased_import node to the split
// symbol path and optional alias
func importedName(node *sitter.Node, src []byte) ([]string, string) {
	if node.Type() == "aliased_import" {
		nameNode := node.ChildByFieldName("name")
		aliasNode := node.ChildByFieldName("alias")
		alias := ""
		if aliasNode != nil {
			alias = aliasNode.Content(src)
		}
		if nameNode == nil {
			return nil, alias
		}
		return splitDotted(nameNode.Content(src)), alias
	}
	return splitDotted(node.Content(src)), ""
}

// splitDotted splits a dotted path into segments. Leading relative-import
// dots stay attached to the first segment so the path rejoins with "."
// into the original text.
func splitDotted(path string) []string {
	dots := 0
	for dots < len(path) && path[dots] == '.' {
		dots++
	}
	prefix := path[:dots]
	rest := path[dots:]
	if rest == "" {
		return []string{prefix}
	}
	segments := strings.Split(rest, ".")
	segments[0] = prefix + segments[0]
	return segments
}
