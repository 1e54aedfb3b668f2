package ports

// DepFileParser reads Make-style dependency files emitted by the compiler's
// preprocessor pass.
type DepFileParser interface {
	// Parse extracts the dependency paths from .d file contents.
	Parse(data []byte) []string

	// ReadFile parses the file at path. A missing file yields (nil, nil).
	ReadFile(path string) ([]string, error)
}
