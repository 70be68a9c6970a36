package graph

// Emitter renders a parsed file back into source text
type Emitter interface {
	Emit(file *File) ([]byte, error)
}

// File represents a Python module with its imports and definitions
type File struct {
	Name      string      // File name
	Path      string      // File path
	Module    string      // Dotted module path, when known
	Imports   []Import    // Top-level imports in source order
	Classes   []*Class    // Classes declared in this module
	Functions []*Function // Module-level functions

	classMap map[string]int // Map of classes for quick lookup
}

// Import represents a single imported name from one import statement.
// A plain `import a.b.c` carries an empty Module and Name [a b c]; a
// `from a.b import c as d` carries Module [a b], Name [c] and Alias d.
// Multi-name statements produce one Import per name.
type Import struct {
	Module []string // Source module path segments, empty for plain imports
	Name   []string // Imported symbol path segments
	Alias  string   // Optional local alias
}

// LookupClass retrieves a class by name from the file
func (f *File) LookupClass(name string) *Class {
	if len(f.classMap) == 0 {
		f.IndexClasses()
	}
	if idx, ok := f.classMap[name]; ok && idx < len(f.Classes) {
		return f.Classes[idx]
	}
	return nil
}

// AddClass adds a class to the file
func (f *File) AddClass(class *Class) {
	f.Classes = append(f.Classes, class)
	if f.classMap == nil {
		f.classMap = make(map[string]int)
	}
	f.classMap[class.Name] = len(f.Classes) - 1
}

// IndexClasses rebuilds the class lookup index
func (f *File) IndexClasses() {
	f.classMap = make(map[string]int)
	for i, class := range f.Classes {
		if class == nil {
			continue
		}
		if _, ok := f.classMap[class.Name]; !ok {
			f.classMap[class.Name] = i
		}
	}
}

// Content reconstructs the content of a file from its components
func (f *File) Content(generator Emitter) ([]byte, error) {
	return generator.Emit(f)
}

// Package represents a directory of Python modules
type Package struct {
	Name    string
	Path    string
	FileSet []*File // Files that are part of this package
}

// AddFile adds a file to the package
func (p *Package) AddFile(file *File) {
	p.FileSet = append(p.FileSet, file)
}

// LookupClass searches all files of the package for a class by name
func (p *Package) LookupClass(name string) *Class {
	for _, file := range p.FileSet {
		if file == nil {
			continue
		}
		if class := file.LookupClass(name); class != nil {
			return class
		}
	}
	return nil
}
