// Package model describes a user-written model class well enough to rebuild
// it elsewhere: its name and base type, an explicit registry of method
// source text captured at definition time, and the constructor snapshot of a
// particular instance. The registry replaces reflection over a live object,
// so method capture is deterministic.
package model

import (
	"github.com/modelbuilder/scriptgen/inspector/graph"
)

// Entry-point methods guaranteed to appear in every reconstructed class
const (
	MethodFit     = "fit"
	MethodPredict = "predict"
)

// DefaultBaseType is the base the reconstructed class header extends
const DefaultBaseType = "torch.nn.Module"

// Method is one registered method with its retrieved source text
type Method struct {
	Name   string
	Source string
}

// Definition is an ordered method-source registry for one class
type Definition struct {
	Name     string
	BaseType string

	methods   []*Method
	methodMap map[string]int
}

// NewDefinition creates a definition extending the default base type
func NewDefinition(name string) *Definition {
	return &Definition{
		Name:      name,
		BaseType:  DefaultBaseType,
		methodMap: make(map[string]int),
	}
}

// AddMethod registers a method's source. Re-registering a name replaces the
// source but keeps the original position.
func (d *Definition) AddMethod(name, source string) *Definition {
	if d.methodMap == nil {
		d.methodMap = make(map[string]int)
	}
	if idx, ok := d.methodMap[name]; ok {
		d.methods[idx].Source = source
		return d
	}
	d.methods = append(d.methods, &Method{Name: name, Source: source})
	d.methodMap[name] = len(d.methods) - 1
	return d
}

// Method retrieves a registered method by name
func (d *Definition) Method(name string) *Method {
	if d.methods == nil {
		return nil
	}
	if idx, ok := d.methodMap[name]; ok && idx < len(d.methods) {
		return d.methods[idx]
	}
	return nil
}

// Methods returns the registered methods in registration order
func (d *Definition) Methods() []*Method {
	out := make([]*Method, len(d.methods))
	copy(out, d.methods)
	return out
}

// HasEntryPoints reports whether both designated entry-point methods are
// registered
func (d *Definition) HasEntryPoints() bool {
	return d.Method(MethodFit) != nil && d.Method(MethodPredict) != nil
}

// DefinitionFromClass builds a definition from a parsed Python class,
// carrying each method's raw source. When the class declares bases they
// replace the default base type.
func DefinitionFromClass(class *graph.Class) *Definition {
	def := NewDefinition(class.Name)
	if bases := class.BaseList(); bases != "" {
		def.BaseType = bases
	}
	for _, method := range class.Methods {
		def.AddMethod(method.Name, method.Content())
	}
	return def
}
