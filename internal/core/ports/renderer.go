package ports

import "github.com/ly1hex/elua/internal/core/domain"

// Renderer prints build progress. Which method fires for an executed command
// depends on the engine's display mode.
type Renderer interface {
	// Command prints the fully expanded command line (display mode "all").
	Command(line string)

	// Label prints a kind-colored label plus target name (display mode "summary").
	Label(kind domain.Kind, name string)

	// UpToDate reports that the root target required no work.
	UpToDate(name string)

	// Removed reports a clean-mode removal; ok is false for the benign
	// "failed!" case.
	Removed(name string, ok bool)
}
