package domain

// Toolchain is the external tool configuration a project builds with. The
// engine only formats these into command templates; it never interprets them.
type Toolchain struct {
	Compiler  string
	Assembler string
	Linker    string
	CFlags    []string
	ASFlags   []string
	LDFlags   []string
	Defines   []string
	Includes  []string
	Libraries []string
	ObjExt    string
}

// Component is one firmware image: a set of sources linked into one output.
type Component struct {
	Name    string
	Output  string
	Sources []string
}

// Project is the parsed project description.
type Project struct {
	Toolchain  Toolchain
	Components []Component

	// Settings are raw option values applied to the engine's option
	// registry before building.
	Settings map[string]string
}
