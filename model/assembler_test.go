package model_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/modelbuilder/scriptgen/inspector/graph"
	"github.com/modelbuilder/scriptgen/model"
)

const (
	fitSource     = "    def fit(self, table, epochs=5):\n        return table"
	predictSource = "    def predict(self, table):\n        return table"
)

func TestAssembleClassSource(t *testing.T) {
	def := model.NewDefinition("MyModel").
		AddMethod("__init__", "    def __init__(self, hidden):\n        self.hidden = hidden").
		AddMethod(model.MethodFit, fitSource).
		AddMethod(model.MethodPredict, predictSource)

	source, err := model.AssembleClassSource(def)
	assert.NoError(t, err)

	lines := strings.Split(source, "\n")
	assert.Equal(t, "class MyModel(torch.nn.Module):", lines[0])
	assert.Equal(t, 1, strings.Count(source, "def fit("))
	assert.Equal(t, 1, strings.Count(source, "def predict("))
	// registration order is preserved
	assert.Less(t, strings.Index(source, "def __init__("), strings.Index(source, "def fit("))
	assert.Less(t, strings.Index(source, "def fit("), strings.Index(source, "def predict("))
}

func TestAssembleClassSource_MissingEntryPoint(t *testing.T) {
	def := model.NewDefinition("MyModel").AddMethod(model.MethodFit, fitSource)

	_, err := model.AssembleClassSource(def)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), "predict")
}

func TestAssembleClassSource_EmptyMethodSource(t *testing.T) {
	def := model.NewDefinition("MyModel").
		AddMethod(model.MethodFit, fitSource).
		AddMethod(model.MethodPredict, predictSource).
		AddMethod("transform", "   ")

	_, err := model.AssembleClassSource(def)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), "transform")
}

func TestDefinition_AddMethodReplaceKeepsPosition(t *testing.T) {
	def := model.NewDefinition("MyModel").
		AddMethod(model.MethodFit, "old").
		AddMethod(model.MethodPredict, predictSource).
		AddMethod(model.MethodFit, fitSource)

	methods := def.Methods()
	assert.Len(t, methods, 2)
	assert.Equal(t, model.MethodFit, methods[0].Name)
	assert.Equal(t, fitSource, methods[0].Source)
	assert.True(t, def.HasEntryPoints())
}

func TestSourceAccumulator(t *testing.T) {
	accumulator := model.NewSourceAccumulator("MyModel", "torch.nn.Module")
	accumulator.AddMethod(fitSource)

	lines := strings.Split(accumulator.Source(), "\n")
	assert.Equal(t, "class MyModel(torch.nn.Module):", lines[0])
	assert.Equal(t, "    def fit(self, table, epochs=5):", lines[1])
	assert.Equal(t, "        return table", lines[2])
}

func TestDefinitionFromClass(t *testing.T) {
	class := &graph.Class{Name: "MyModel", Bases: []string{"base.VertexModel"}}
	class.AddMethod(&graph.Function{Name: "fit", Location: &graph.Location{Raw: fitSource}})
	class.AddMethod(&graph.Function{Name: "predict", Location: &graph.Location{Raw: predictSource}})

	def := model.DefinitionFromClass(class)
	assert.Equal(t, "MyModel", def.Name)
	assert.Equal(t, "base.VertexModel", def.BaseType)
	assert.True(t, def.HasEntryPoints())

	source, err := model.AssembleClassSource(def)
	assert.NoError(t, err)
	assert.Equal(t, "class MyModel(base.VertexModel):", strings.Split(source, "\n")[0])
}
