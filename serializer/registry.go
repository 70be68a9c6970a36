// Package serializer describes the deserialization collaborators available to
// generated scripts: which callable reconstructs a value of a given runtime
// type from a storage location, and which entry point persists the trained
// model.
package serializer

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrUnknownType indicates a runtime type with no registered deserializer
var ErrUnknownType = errors.New("no deserializer registered for type")

// TypeTag identifies the runtime type of a serialized parameter
type TypeTag string

const (
	TypeDataFrame  TypeTag = "dataframe"
	TypeDataLoader TypeTag = "dataloader"
	TypeModel      TypeTag = "model"
)

// VertexModelPackage is the package the base collaborator and its
// serializers live in
const VertexModelPackage = "google.cloud.aiplatform.experimental.vertex_model"

// Entry describes one deserializer callable
type Entry struct {
	FuncName string // Callable name referenced at the generated call site
	Module   string // Module the callable is imported from
}

// ImportLine renders the import statement a generated script needs to make
// the deserializer callable available
func (e Entry) ImportLine() string {
	return fmt.Sprintf("from %s import %s", e.Module, e.FuncName)
}

// Registry maps runtime type tags to deserializer entries. Registration
// order is preserved so prologue imports render deterministically.
type Registry struct {
	tags    []TypeTag
	entries map[TypeTag]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[TypeTag]Entry)}
}

// Register adds or replaces the deserializer for a type tag. Replacing an
// existing tag keeps its original position.
func (r *Registry) Register(tag TypeTag, entry Entry) {
	if _, ok := r.entries[tag]; !ok {
		r.tags = append(r.tags, tag)
	}
	r.entries[tag] = entry
}

// Lookup resolves the deserializer for a runtime type tag
func (r *Registry) Lookup(tag TypeTag) (Entry, error) {
	entry, ok := r.entries[tag]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownType, "%s", tag)
	}
	return entry, nil
}

// PrologueImports renders one import line per registered deserializer, in
// registration order
func (r *Registry) PrologueImports() []string {
	lines := make([]string, 0, len(r.tags))
	for _, tag := range r.tags {
		lines = append(lines, r.entries[tag].ImportLine())
	}
	return lines
}

// DefaultRegistry returns the registry of the known serialization formats
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(TypeDataFrame, Entry{
		FuncName: "_deserialize_dataframe",
		Module:   VertexModelPackage + ".serializers.pandas",
	})
	registry.Register(TypeDataLoader, Entry{
		FuncName: "_deserialize_dataloader",
		Module:   VertexModelPackage + ".serializers.pytorch",
	})
	return registry
}

// Save identifies the persistence entry point of the serialization
// collaborator: a module object exposing a save callable accepting
// (directory, object, mode-flag).
type Save struct {
	Module string // Module the object is imported from
	Object string // Local name the import binds
	Func   string // Attribute invoked on the object
}

// DefaultSave returns the persistence entry point of the known collaborator
func DefaultSave() Save {
	return Save{
		Module: VertexModelPackage + ".serializers",
		Object: "model",
		Func:   "_serialize_local_model",
	}
}

// ImportLine renders the import that binds the save object
func (s Save) ImportLine() string {
	return fmt.Sprintf("from %s import %s", s.Module, s.Object)
}

// CallLine renders the trailing persistence statement. The output directory
// is read from envVar when the generated script runs, not at generation time.
func (s Save) CallLine(envVar, binding string) string {
	return fmt.Sprintf("%s.%s(os.getenv('%s'), %s, %s.training_mode)", s.Object, s.Func, envVar, binding, binding)
}
