package python

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/modelbuilder/scriptgen/inspector/graph"
)

// Inspector provides functionality to inspect Python code and extract
// imports, classes and their method source
type Inspector struct {
	config *graph.Config
	source []byte
}

// NewInspector creates a new Python Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Inspector{config: config}
}

// InspectSource parses Python source code from a byte slice
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(src, "source.py")
}

// InspectFile parses a Python source file
func (i *Inspector) InspectFile(filename string) (*graph.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", filename)
	}
	return i.inspect(src, filename)
}

func (i *Inspector) inspect(src []byte, filename string) (*graph.File, error) {
	i.source = src

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, errors.Wrapf(ErrParse, "%s", filename)
	}

	return i.processModule(rootNode, src, filename), nil
}

// InspectPackage inspects a directory of Python modules
func (i *Inspector) InspectPackage(packagePath string) (*graph.Package, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get absolute path")
	}

	pkg := &graph.Package{
		Name: filepath.Base(absPath),
		Path: absPath,
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read package directory %s", absPath)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".py" {
			continue
		}
		if i.config.SkipTests && isTestFile(name) {
			continue
		}

		file, err := i.InspectFile(filepath.Join(absPath, name))
		if err != nil {
			return nil, errors.Wrapf(err, "error processing %s", name)
		}
		pkg.AddFile(file)
	}

	if len(pkg.FileSet) == 0 {
		return nil, errors.Newf("no Python files found in package: %s", packagePath)
	}

	return pkg, nil
}

func isTestFile(name string) bool {
	return strings.HasPrefix(name, "test_") || strings.HasSuffix(name, "_test.py")
}

// processModule extracts imports, classes and module-level functions
func (i *Inspector) processModule(rootNode *sitter.Node, src []byte, filename string) *graph.File {
	aFile := &graph.File{
		Name:    filepath.Base(filename),
		Path:    filename,
		Imports: collectImports(rootNode, src),
	}

	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		childNode := rootNode.NamedChild(j)
		defNode := childNode
		if childNode.Type() == "decorated_definition" {
			defNode = childNode.ChildByFieldName("definition")
			if defNode == nil {
				continue
			}
		}

		switch defNode.Type() {
		case "class_definition":
			if class := i.parseClass(childNode, defNode, src); class != nil {
				aFile.AddClass(class)
			}
		case "function_definition":
			if fn := i.parseFunction(childNode, defNode, src, ""); fn != nil {
				aFile.Functions = append(aFile.Functions, fn)
			}
		}
	}

	return aFile
}

// parseClass extracts a class with its methods. outerNode includes
// decorators when the class is decorated
func (i *Inspector) parseClass(outerNode, defNode *sitter.Node, src []byte) *graph.Class {
	nameNode := defNode.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)
	if !i.config.IncludePrivate && strings.HasPrefix(name, "_") {
		return nil
	}

	class := &graph.Class{
		Name:     name,
		Location: lineLocation(outerNode, src),
	}

	if superNode := defNode.ChildByFieldName("superclasses"); superNode != nil {
		for k := 0; k < int(superNode.NamedChildCount()); k++ {
			class.Bases = append(class.Bases, superNode.NamedChild(k).Content(src))
		}
	}

	bodyNode := defNode.ChildByFieldName("body")
	if bodyNode == nil {
		return class
	}

	class.Docstring = docstring(bodyNode, src)

	for k := 0; k < int(bodyNode.NamedChildCount()); k++ {
		childNode := bodyNode.NamedChild(k)
		methodNode := childNode
		if childNode.Type() == "decorated_definition" {
			methodNode = childNode.ChildByFieldName("definition")
			if methodNode == nil {
				continue
			}
		}
		if methodNode.Type() != "function_definition" {
			continue
		}
		if fn := i.parseFunction(childNode, methodNode, src, name); fn != nil {
			class.AddMethod(fn)
		}
	}

	return class
}

// parseFunction extracts a function or method definition
func (i *Inspector) parseFunction(outerNode, defNode *sitter.Node, src []byte, receiver string) *graph.Function {
	nameNode := defNode.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)
	if !i.config.IncludePrivate && strings.HasPrefix(name, "_") && !strings.HasPrefix(name, "__") {
		return nil
	}

	fn := &graph.Function{
		Name:     name,
		Receiver: receiver,
		Location: lineLocation(outerNode, src),
	}

	if paramsNode := defNode.ChildByFieldName("parameters"); paramsNode != nil {
		for k := 0; k < int(paramsNode.NamedChildCount()); k++ {
			if param := parameterName(paramsNode.NamedChild(k), src); param != "" {
				fn.Parameters = append(fn.Parameters, param)
			}
		}
	}

	if outerNode.Type() == "decorated_definition" {
		for k := 0; k < int(outerNode.NamedChildCount()); k++ {
			childNode := outerNode.NamedChild(k)
			if childNode.Type() == "decorator" {
				fn.Decorators = append(fn.Decorators, strings.TrimPrefix(childNode.Content(src), "@"))
			}
		}
	}

	return fn
}

// parameterName resolves the declared name of a parameter node
func parameterName(node *sitter.Node, src []byte) string {
	switch node.Type() {
	case "identifier":
		return node.Content(src)
	case "default_parameter", "typed_default_parameter":
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			return nameNode.Content(src)
		}
	case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
		for k := 0; k < int(node.NamedChildCount()); k++ {
			childNode := node.NamedChild(k)
			if childNode.Type() == "identifier" {
				return childNode.Content(src)
			}
		}
	}
	return ""
}

// docstring returns the raw leading string literal of a block, if present
func docstring(bodyNode *sitter.Node, src []byte) string {
	if bodyNode.NamedChildCount() == 0 {
		return ""
	}
	first := bodyNode.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	if literal := first.NamedChild(0); literal.Type() == "string" {
		return literal.Content(src)
	}
	return ""
}

// lineLocation captures the raw source of a node extended to the start of
// its first line, so method bodies keep their class-level indentation the
// way interactive source retrieval would return them
func lineLocation(node *sitter.Node, src []byte) *graph.Location {
	start := int(node.StartByte())
	if column := int(node.StartPoint().Column); column > 0 && column <= start {
		start -= column
	}
	end := int(node.EndByte())
	return &graph.Location{
		Raw:   string(src[start:end]),
		Start: start,
		End:   end,
	}
}
