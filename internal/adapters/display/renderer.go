// Package display implements the line-oriented build progress renderer.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/ly1hex/elua/internal/ui/output"
	"github.com/ly1hex/elua/internal/ui/style"
	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer with chronological, line-buffered
// output. Which of Command/Label fires per executed target is decided by the
// engine's display mode.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer creates a new Renderer. A nil writer defaults to stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:   w,
		out: output.New(w),
	}
}

// Command prints the fully expanded command line (display mode "all").
func (r *Renderer) Command(line string) {
	fmt.Fprintln(r.w, line)
}

// Label prints a kind-colored tag plus the target name (display mode "summary").
func (r *Renderer) Label(kind domain.Kind, name string) {
	tag := fmt.Sprintf("[%s]", kind.Label())
	styled := r.out.String(tag).Foreground(termenv.RGBColor(string(style.KindColor(kind)))).Bold()
	fmt.Fprintf(r.w, "%s %s\n", styled.String(), name)
}

// UpToDate reports that the root target required no work.
func (r *Renderer) UpToDate(name string) {
	fmt.Fprintf(r.w, "%s: up to date\n", name)
}

// Removed reports a clean-mode removal. The failed case is benign and only
// flagged, never fatal.
func (r *Renderer) Removed(name string, ok bool) {
	if ok {
		fmt.Fprintf(r.w, "rm %s\n", name)
		return
	}
	failed := r.out.String("failed!").Foreground(termenv.RGBColor(string(style.Red)))
	fmt.Fprintf(r.w, "rm %s %s\n", name, failed.String())
}
