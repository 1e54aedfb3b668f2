package builder

import (
	"context"
	"os"
	"strings"

	"github.com/ly1hex/elua/internal/core/domain"
	"go.opentelemetry.io/otel/codes"
	"go.trai.ch/zerr"
)

// mtime returns the modification time of path in nanoseconds since the
// epoch, or -1 for a missing path. A missing dependency is therefore older
// than any existing consumer and a missing consumer older than any
// dependency, both of which drive the correct rebuild decision.
func mtime(path string) int64 {
	if path == "" {
		return -1
	}
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.ModTime().UnixNano()
}

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// buildTarget is the memoized staleness traversal. It returns whether the
// target was stale from its parent's point of view.
func (e *Engine) buildTarget(ctx context.Context, t *domain.Target) (bool, error) {
	name := t.Name
	if e.alreadyRun[name] {
		return false, nil
	}
	if e.visiting[name] {
		return false, zerr.With(domain.ErrCycleDetected, "target", name)
	}
	e.visiting[name] = true
	defer delete(e.visiting, name)

	tn := t.TargetName()
	runCommand := tn != "" && !isRegularFile(tn)
	runCommand = runCommand || e.globalForceRebuild
	initial := runCommand

	runCommand, depends, resolved, err := e.evalDeps(ctx, t, runCommand)
	if err != nil {
		return false, err
	}

	if t.PreHook != nil {
		before := t.RawDeps
		t.PreHook(t, runCommand)
		if !domain.DepsEqual(before, t.RawDeps) {
			// The hook redefined the dep set: restart dependency evaluation
			// from the staleness state at entry. Signals gathered from the
			// replaced deps are discarded on purpose.
			runCommand, depends, resolved, err = e.evalDeps(ctx, t, initial)
			if err != nil {
				return false, err
			}
		}
	}

	runCommand = runCommand || t.ForceRebuild || e.cleanMode

	keep := true
	if runCommand && t.Command != nil {
		keep, err = e.runCommand(ctx, t, depends, resolved)
		if err != nil {
			return false, err
		}
	}

	if t.PostHook != nil {
		t.PostHook(t, runCommand)
	}

	e.alreadyRun[name] = true
	return runCommand && keep, nil
}

// evalDeps resolves the raw dependency list and folds every child's
// staleness into run. It also accumulates the space-joined depends string
// used by $(DEPENDS).
func (e *Engine) evalDeps(ctx context.Context, t *domain.Target, run bool) (bool, string, []domain.Node, error) {
	resolved := e.resolveDeps(t)

	var depends []string
	for _, d := range resolved {
		var childStale bool
		switch d := d.(type) {
		case *domain.Target:
			stale, err := e.buildTarget(ctx, d)
			if err != nil {
				return false, "", nil, err
			}
			childStale = stale
			if dtn := d.TargetName(); dtn != "" {
				childStale = childStale || mtime(dtn) > mtime(t.TargetName())
			}
		case *domain.FileDep:
			childStale = e.fileDepStale(d, t)
		}
		run = run || childStale

		if dtn := d.TargetName(); dtn != "" {
			depends = append(depends, dtn)
		}
	}

	return run, strings.Join(depends, " "), resolved, nil
}

// resolveDeps derives the resolved dependency list from RawDeps. Resolution
// re-runs before every build attempt: targets registered since construction
// win over file wrapping, and hooks may have rewritten the raw list.
func (e *Engine) resolveDeps(t *domain.Target) []domain.Node {
	flat := domain.FlattenDeps(t.RawDeps)

	resolved := make([]domain.Node, 0, len(flat))
	for _, d := range flat {
		switch d := d.(type) {
		case domain.RawDep:
			if found := e.registry.Lookup(string(d)); found != nil {
				resolved = append(resolved, found)
				continue
			}
			resolved = append(resolved, &domain.FileDep{
				Path:     domain.NormalizeName(string(d)),
				Consumer: t.Name,
			})
		case domain.NodeDep:
			resolved = append(resolved, d.Node)
		}
	}

	t.Resolved = resolved
	return resolved
}

// fileDepStale is the leaf staleness query: a phony consumer is always
// stale; otherwise the file is stale when newer than its consumer.
func (e *Engine) fileDepStale(f *domain.FileDep, consumer *domain.Target) bool {
	if consumer.TargetName() == "" {
		return true
	}
	return mtime(f.Path) > mtime(consumer.TargetName())
}

// runCommand executes the target's command, or removes its output in clean
// mode. It returns the keep flag: false when a callable asked not to be
// counted as executed.
func (e *Engine) runCommand(ctx context.Context, t *domain.Target, depends string, resolved []domain.Node) (bool, error) {
	if e.cleanMode {
		e.cleanTarget(t)
		return true, nil
	}

	switch cmd := t.Command.(type) {
	case domain.Template:
		first := ""
		if len(resolved) > 0 {
			first = resolved[0].TargetName()
		}
		line := cmd.Expand(t.Name, depends, first)
		e.display(t, line)

		ctx, span := e.tracer.Start(ctx, t.Name)
		defer span.End()

		if err := e.executor.Execute(ctx, line); err != nil {
			span.SetStatus(codes.Error, "command failed")
			return false, zerr.With(err, "target", t.Name)
		}
		return true, nil

	case domain.Thunk:
		e.renderer.Label(t.Kind, t.Name)
		switch rc := cmd(t.Name, resolved, t.ExtraArgs); rc {
		case domain.ThunkOK:
			return true, nil
		case domain.ThunkSkip:
			return false, nil
		default:
			return false, zerr.With(zerr.With(domain.ErrThunkFailed, "target", t.Name), "code", rc)
		}

	default:
		return true, nil
	}
}

// cleanTarget removes the target's output file. Phony targets have no file
// and are never cleaned. A failed removal is benign.
func (e *Engine) cleanTarget(t *domain.Target) {
	tn := t.TargetName()
	if tn == "" {
		return
	}
	err := os.Remove(tn)
	e.renderer.Removed(tn, err == nil)
}

// display prints the executed command according to the display mode.
func (e *Engine) display(t *domain.Target, line string) {
	if e.DispMode() == domain.DispModeAll {
		e.renderer.Command(line)
		return
	}
	name := t.TargetName()
	if name == "" {
		name = t.Name
	}
	e.renderer.Label(t.Kind, name)
}
