// Package config provides the project file loader.
package config

import (
	"os"
	"path/filepath"

	"github.com/ly1hex/elua/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project file looked up in the working directory.
const DefaultFilename = "elua.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default project file name.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the project description from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a project file from the given path.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", path)
	}

	var pf Projectfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project file"), "path", path)
	}

	if len(pf.Components) == 0 {
		return nil, domain.ErrNoComponents
	}

	// First pass: verify component outputs are unique.
	outputs := make(map[string]bool, len(pf.Components))
	for _, c := range pf.Components {
		if c.Output == "" {
			return nil, zerr.With(zerr.New("component has no output"), "component", c.Name)
		}
		if outputs[c.Output] {
			return nil, zerr.With(domain.ErrDuplicateComponent, "output", c.Output)
		}
		outputs[c.Output] = true
	}

	// Second pass: build domain values, applying toolchain defaults.
	tc := domain.Toolchain{
		Compiler:  pf.Toolchain.Compiler,
		Assembler: pf.Toolchain.Assembler,
		Linker:    pf.Toolchain.Linker,
		CFlags:    pf.Toolchain.CFlags,
		ASFlags:   pf.Toolchain.ASFlags,
		LDFlags:   pf.Toolchain.LDFlags,
		Defines:   pf.Toolchain.Defines,
		Includes:  pf.Toolchain.Includes,
		Libraries: pf.Toolchain.Libraries,
		ObjExt:    pf.Toolchain.ObjExt,
	}
	if tc.Compiler == "" {
		tc.Compiler = "gcc"
	}
	if tc.Assembler == "" {
		tc.Assembler = tc.Compiler
	}
	if tc.Linker == "" {
		tc.Linker = tc.Compiler
	}
	if tc.ObjExt == "" {
		tc.ObjExt = ".o"
	}

	project := &domain.Project{
		Toolchain: tc,
		Settings:  pf.Settings,
	}
	for _, c := range pf.Components {
		if len(c.Sources) == 0 {
			return nil, zerr.With(zerr.New("component has no sources"), "component", c.Name)
		}
		name := c.Name
		if name == "" {
			name = c.Output
		}
		project.Components = append(project.Components, domain.Component{
			Name:    name,
			Output:  c.Output,
			Sources: c.Sources,
		})
	}

	return project, nil
}
