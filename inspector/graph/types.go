package graph

import "strings"

// Class represents a parsed Python class with its methods
type Class struct {
	Name      string      // Class name
	Bases     []string    // Base classes in declaration order
	Methods   []*Function // Methods declared in the class body
	Docstring string      // Leading docstring, if any
	Location  *Location   // Location of the class in the source code

	methodMap map[string]int // Map of methods for quick lookup
}

// GetMethod retrieves a method by name from the class
func (c *Class) GetMethod(name string) *Function {
	if c.Methods == nil {
		return nil
	}
	if idx, ok := c.methodMap[name]; ok && idx < len(c.Methods) {
		return c.Methods[idx]
	}
	return nil
}

// AddMethod adds a method to the class
func (c *Class) AddMethod(method *Function) {
	if c.methodMap == nil {
		c.methodMap = make(map[string]int)
	}
	c.Methods = append(c.Methods, method)
	c.methodMap[method.Name] = len(c.Methods) - 1
}

// BaseList returns the declared base classes joined the way they appeared in source
func (c *Class) BaseList() string {
	return strings.Join(c.Bases, ", ")
}

// Content returns the raw source of the class including its body
func (c *Class) Content() string {
	if c.Location == nil {
		return ""
	}
	return c.Location.Raw
}

// Function represents a Python function or method
type Function struct {
	Name       string    // Function name
	Parameters []string  // Parameter names in declaration order
	Decorators []string  // Decorator expressions, outermost first
	Receiver   string    // Owning class name, empty for module-level functions
	Location   *Location // Location of the function in the source code
}

// Content returns the raw source of the function including decorators
func (f *Function) Content() string {
	if f.Location == nil {
		return ""
	}
	return f.Location.Raw
}

// Location identifies a byte range in the inspected source
type Location struct {
	Raw   string // Raw source text of the range
	Start int    // Start byte offset
	End   int    // End byte offset
}
