package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Project represents information about a detected Python project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Name         string // Name of the project (extracted from config files)
	RelativePath string // Path from project root to the specified file
	Marker       string // Marker file that identified the root
}

// Detector identifies Python project root folders
type Detector struct {
	markers []string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"pyproject.toml",
			"setup.py",
			"setup.cfg",
			"requirements.txt",
			".git",
		},
	}
}

// DetectProject identifies the project root for the given file path
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", filePath)
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findProjectRoot(startDir)
	info := &Project{RootPath: absPath}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Marker = marker
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	info.Name = d.extractProjectName(info.RootPath)

	return info, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

var (
	pyProjectNameRegex = regexp.MustCompile(`(?m)^\s*name\s*=\s*["']([^"']+)["']`)
	setupNameRegex     = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
)

// extractProjectName attempts to extract a project name from configuration
// files, falling back to the root directory name
func (d *Detector) extractProjectName(rootPath string) string {
	if data, err := os.ReadFile(filepath.Join(rootPath, "pyproject.toml")); err == nil {
		if matches := pyProjectNameRegex.FindSubmatch(data); len(matches) >= 2 {
			return string(matches[1])
		}
	}
	if data, err := os.ReadFile(filepath.Join(rootPath, "setup.py")); err == nil {
		if matches := setupNameRegex.FindSubmatch(data); len(matches) >= 2 {
			return string(matches[1])
		}
	}
	return filepath.Base(rootPath)
}

// ModulePath converts a project-relative source path into the dotted module
// path the file is importable as
func ModulePath(relativePath string) string {
	path := strings.TrimSuffix(filepath.ToSlash(relativePath), ".py")
	path = strings.TrimSuffix(path, "/__init__")
	return strings.ReplaceAll(path, "/", ".")
}
