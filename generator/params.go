package generator

import "github.com/modelbuilder/scriptgen/serializer"

// PassThroughParam is an argument small enough to render as a literal
// directly in the generated call
type PassThroughParam struct {
	Name  string
	Value Value
}

// SerializedParam is an argument that was persisted externally and must be
// reconstructed via a deserializer call in the generated call
type SerializedParam struct {
	Name     string             // Parameter name at the call site
	Location string             // Storage location the value was written to
	Type     serializer.TypeTag // Runtime type, resolved against the registry
}

// PassThrough builds a pass-through parameter
func PassThrough(name string, value Value) PassThroughParam {
	return PassThroughParam{Name: name, Value: value}
}

// Serialized builds a serialized-parameter descriptor
func Serialized(name, location string, tag serializer.TypeTag) SerializedParam {
	return SerializedParam{Name: name, Location: location, Type: tag}
}
