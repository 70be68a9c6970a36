package model

import (
	"github.com/modelbuilder/scriptgen/generator"
	"github.com/modelbuilder/scriptgen/inspector/graph"
)

// Instance pairs a class definition with the state recorded when a
// particular object was constructed. The constructor snapshot is captured
// once by the owning framework and treated here as read-only.
type Instance struct {
	Def             *Definition
	ConstructorArgs []generator.Value
	TrainingMode    string
}

// NewInstance snapshots the positional constructor arguments of an object,
// self excluded
func NewInstance(def *Definition, args ...generator.Value) *Instance {
	return &Instance{
		Def:             def,
		ConstructorArgs: args,
		TrainingMode:    "local",
	}
}

// Request assembles the class source and bundles everything the composer
// needs to generate a script that rebuilds this instance and invokes method
// with the given arguments. An empty method produces a reconstruct-only
// script.
func (i *Instance) Request(method string, imports []graph.Import, serialized []generator.SerializedParam, passThrough []generator.PassThroughParam) (generator.Request, error) {
	source, err := AssembleClassSource(i.Def)
	if err != nil {
		return generator.Request{}, err
	}

	return generator.Request{
		ClassSource:     source,
		ClassName:       i.Def.Name,
		Method:          method,
		ConstructorArgs: i.ConstructorArgs,
		Imports:         imports,
		Serialized:      serialized,
		PassThrough:     passThrough,
	}, nil
}
