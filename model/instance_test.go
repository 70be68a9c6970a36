package model_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/modelbuilder/scriptgen/generator"
	"github.com/modelbuilder/scriptgen/inspector/graph"
	"github.com/modelbuilder/scriptgen/model"
	"github.com/modelbuilder/scriptgen/serializer"
)

func TestInstance_Request(t *testing.T) {
	def := model.NewDefinition("MyModel").
		AddMethod(model.MethodFit, fitSource).
		AddMethod(model.MethodPredict, predictSource)
	instance := model.NewInstance(def, generator.Int(5), generator.String("x"))
	assert.Equal(t, "local", instance.TrainingMode)

	imports := []graph.Import{{Name: []string{"torch"}}}
	serialized := []generator.SerializedParam{
		generator.Serialized("table", "gs://bucket/t.parquet", serializer.TypeDataFrame),
	}
	passThrough := []generator.PassThroughParam{
		generator.PassThrough("epochs", generator.Int(5)),
	}

	req, err := instance.Request("fit", imports, serialized, passThrough)
	assert.NoError(t, err)
	assert.Equal(t, "MyModel", req.ClassName)
	assert.Equal(t, "fit", req.Method)
	assert.Equal(t, instance.ConstructorArgs, req.ConstructorArgs)
	assert.Equal(t, imports, req.Imports)
	assert.Equal(t, serialized, req.Serialized)
	assert.Equal(t, passThrough, req.PassThrough)
	assert.Contains(t, req.ClassSource, "class MyModel(torch.nn.Module):")
}

func TestInstance_RequestMissingEntryPoint(t *testing.T) {
	instance := model.NewInstance(model.NewDefinition("MyModel"))

	_, err := instance.Request("fit", nil, nil, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSourceUnavailable))
}
