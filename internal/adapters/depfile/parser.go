// Package depfile reads Make-style dependency files emitted by the
// compiler's preprocessor pass.
package depfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// Parser implements ports.DepFileParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the dependency paths from .d file contents. The format is
// the Make convention:
//
//	target: dep1 dep2 \
//	  dep3
//
// The target prefix is stripped, backslash continuations and newlines fold
// to spaces, and whitespace collapses.
func (p *Parser) Parse(data []byte) []string {
	content := string(data)

	content = strings.ReplaceAll(content, "\\\r\n", " ")
	content = strings.ReplaceAll(content, "\\\n", " ")
	content = strings.ReplaceAll(content, "\r\n", " ")
	content = strings.ReplaceAll(content, "\n", " ")

	// Strip the "target:" prefix. The colon search skips the first two
	// characters so Windows drive letters in the target survive.
	if idx := strings.Index(content[min(2, len(content)):], ":"); idx >= 0 {
		content = content[idx+min(2, len(content))+1:]
	}

	return strings.Fields(content)
}

// ReadFile parses the file at path. A missing file yields no dependencies.
func (p *Parser) ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the build directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read dependency file"), "path", path)
	}
	return p.Parse(data), nil
}
