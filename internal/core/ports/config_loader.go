package ports

import "github.com/ly1hex/elua/internal/core/domain"

// ConfigLoader defines the interface for loading the project description.
type ConfigLoader interface {
	// Load reads the project description from the given working directory.
	Load(cwd string) (*domain.Project, error)
}
