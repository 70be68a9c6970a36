// Package generator composes standalone Python training scripts from a
// reconstructed class source, a constructor snapshot and call-site parameter
// descriptors. Composition is pure text assembly: it performs no I/O and
// never executes the module it describes.
package generator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/modelbuilder/scriptgen/inspector/graph"
	"github.com/modelbuilder/scriptgen/inspector/python"
	"github.com/modelbuilder/scriptgen/serializer"
)

// Request carries the inputs of one composition
type Request struct {
	ClassSource     string             // Assembled class definition text
	ClassName       string             // Name of the class ClassSource defines
	Method          string             // Method to invoke; empty emits no invocation
	ConstructorArgs []Value            // Positional constructor arguments, self excluded
	Imports         []graph.Import     // Import records of the originating module
	Serialized      []SerializedParam  // Externally persisted call arguments, in declared order
	PassThrough     []PassThroughParam // Literal call arguments, in declared order
}

// Composer stitches requests into generated scripts
type Composer struct {
	registry *serializer.Registry
	save     serializer.Save
	config   *Config
	logger   *zap.Logger
}

// NewComposer creates a Composer; nil registry or config select the defaults
func NewComposer(registry *serializer.Registry, config *Config) *Composer {
	if registry == nil {
		registry = serializer.DefaultRegistry()
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Composer{
		registry: registry,
		save:     serializer.DefaultSave(),
		config:   config,
		logger:   zap.NewNop(),
	}
}

// WithLogger attaches a logger for composition diagnostics
func (c *Composer) WithLogger(logger *zap.Logger) *Composer {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithSave overrides the persistence entry point of the generated script
func (c *Composer) WithSave(save serializer.Save) *Composer {
	c.save = save
	return c
}

// Compose produces the generated script. Any failure is fatal: a partially
// generated script is unsafe to execute remotely, so no partial result is
// ever returned.
func (c *Composer) Compose(req Request) (*Script, error) {
	if req.ClassName == "" {
		return nil, errors.New("class name is required")
	}

	var lines []string
	lines = append(lines, c.prologue()...)

	for _, imp := range req.Imports {
		line, err := python.RenderImport(imp)
		if err != nil {
			return nil, errors.Wrapf(err, "module import of %s", req.ClassName)
		}
		lines = append(lines, line)
	}

	lines = append(lines, strings.Split(req.ClassSource, "\n")...)
	lines = append(lines, c.instantiation(req))

	if req.Method != "" {
		call, err := c.invocation(req)
		if err != nil {
			return nil, err
		}
		lines = append(lines, call)
	}

	lines = append(lines, c.save.CallLine(c.config.OutputDirEnv, c.config.Binding))

	c.logger.Debug("composed script",
		zap.String("class", req.ClassName),
		zap.String("method", req.Method),
		zap.Int("lines", len(lines)))

	return newScript(lines), nil
}

// prologue emits the fixed imports the generated script's runtime needs:
// operating-system access, the base collaborator and the deserialization
// helpers of every registered serialization format
func (c *Composer) prologue() []string {
	lines := []string{
		"import os",
		fmt.Sprintf("from %s import base", c.config.BasePackage),
	}
	lines = append(lines, c.registry.PrologueImports()...)
	lines = append(lines, c.save.ImportLine())
	return lines
}

// instantiation emits `<binding> = <ClassName>(<args>)`
func (c *Composer) instantiation(req Request) string {
	args := make([]string, 0, len(req.ConstructorArgs))
	for _, arg := range req.ConstructorArgs {
		args = append(args, arg.Render())
	}
	return fmt.Sprintf("%s = %s(%s)", c.config.Binding, req.ClassName, strings.Join(args, ", "))
}

// invocation emits the method call with deserializer substitutions for
// serialized parameters followed by the pass-through literals
func (c *Composer) invocation(req Request) (string, error) {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "%s.%s(", c.config.Binding, req.Method)

	for _, param := range req.Serialized {
		entry, err := c.registry.Lookup(param.Type)
		if err != nil {
			return "", errors.Wrapf(err, "parameter %s", param.Name)
		}
		fmt.Fprintf(builder, "%s=%s('%s'), ", param.Name, entry.FuncName, param.Location)
	}

	for _, param := range req.PassThrough {
		fmt.Fprintf(builder, "%s=%s, ", param.Name, param.Value.Render())
	}

	builder.WriteString(")")
	return builder.String(), nil
}
