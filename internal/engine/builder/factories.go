package builder

import (
	"path/filepath"
	"strings"

	"github.com/ly1hex/elua/internal/core/domain"
)

// asmExtensions are the source extensions handled by the assembler.
var asmExtensions = map[string]bool{
	".s":   true,
	".S":   true,
	".asm": true,
}

func isAsmSource(source string) bool {
	return asmExtensions[filepath.Ext(source)]
}

// CompileTemplate synthesizes the C compile command template.
func CompileTemplate(tc domain.Toolchain) string {
	return joinTemplate(tc.Compiler, tc.CFlags, tc.Defines, tc.Includes, "-c", "-o", "$(TARGET)", "$(FIRST)")
}

// AssembleTemplate synthesizes the assemble command template.
func AssembleTemplate(tc domain.Toolchain) string {
	return joinTemplate(tc.Assembler, tc.ASFlags, tc.Defines, tc.Includes, "-c", "-o", "$(TARGET)", "$(FIRST)")
}

// CDepTemplate synthesizes the C header-dependency command template.
func CDepTemplate(tc domain.Toolchain) string {
	return joinTemplate(tc.Compiler, tc.CFlags, tc.Defines, tc.Includes, "-E", "-MM", "-o", "$(TARGET)", "$(FIRST)")
}

// AsmDepTemplate synthesizes the assembly header-dependency command template.
func AsmDepTemplate(tc domain.Toolchain) string {
	return joinTemplate(tc.Assembler, tc.ASFlags, tc.Defines, tc.Includes, "-E", "-MM", "-o", "$(TARGET)", "$(FIRST)")
}

// LinkTemplate synthesizes the link command template.
func LinkTemplate(tc domain.Toolchain) string {
	parts := []string{tc.Linker}
	parts = append(parts, tc.LDFlags...)
	parts = append(parts, "-o", "$(TARGET)", "$(DEPENDS)")
	for _, lib := range tc.Libraries {
		parts = append(parts, "-l"+lib)
	}
	return strings.Join(parts, " ")
}

func joinTemplate(tool string, flags, defines, includes []string, tail ...string) string {
	parts := []string{tool}
	parts = append(parts, flags...)
	for _, d := range defines {
		parts = append(parts, "-D"+d)
	}
	for _, i := range includes {
		parts = append(parts, "-I"+i)
	}
	parts = append(parts, tail...)
	return strings.Join(parts, " ")
}

// SetToolchain derives the engine's command templates from the project
// toolchain. Must be called before targets are constructed.
func (e *Engine) SetToolchain(tc domain.Toolchain) {
	e.comp = CompConfig{
		CompileCmd:  CompileTemplate(tc),
		AssembleCmd: AssembleTemplate(tc),
		CDepCmd:     CDepTemplate(tc),
		AsmDepCmd:   AsmDepTemplate(tc),
		ObjExt:      tc.ObjExt,
	}
	e.link = LinkConfig{
		LinkCmd: LinkTemplate(tc),
	}
}

// MakePhonyTarget registers a phony aggregator goal.
func (e *Engine) MakePhonyTarget(name, help string, deps ...domain.Dep) *domain.Target {
	t := e.NewTarget(name, nil, domain.KindPhony, deps...)
	t.Help = help
	return t
}

// MakeExeTarget builds the target layers for one executable image: a dep
// target and a compile or assemble target per source, and the link target
// tying the objects together.
func (e *Engine) MakeExeTarget(component domain.Component) (*domain.Target, error) {
	buildDir := e.BuildDir()

	linkForce := false
	if !e.cleanMode {
		changed, err := e.store.CompareAndStore(buildDir, ClassLink, e.link.fields())
		if err != nil {
			return nil, err
		}
		linkForce = changed
	}

	objDeps := make([]domain.Dep, 0, len(component.Sources))
	for _, source := range component.Sources {
		source = domain.NormalizeName(source)

		depCmd := e.comp.CDepCmd
		compileCmd := e.comp.CompileCmd
		kind := domain.KindCompile
		if isAsmSource(source) {
			depCmd = e.comp.AsmDepCmd
			compileCmd = e.comp.AssembleCmd
			kind = domain.KindAssemble
		}

		var depTarget *domain.Target
		if depCmd != "" {
			dt, err := e.makeDepTarget(source, depCmd)
			if err != nil {
				return nil, err
			}
			depTarget = dt
		}

		objName := domain.ObjFileName(e.BuildMode(), buildDir, source, e.comp.ObjExt)
		var deps []domain.Dep
		if depTarget != nil {
			deps = domain.NodeDeps(depTarget)
		} else {
			deps = domain.RawDeps(source)
		}

		obj := e.NewTarget(objName, domain.Template(compileCmd), kind, deps...)
		obj.PreHook = e.refreshDepsHook(source)

		objDeps = append(objDeps, domain.NodeDep{Node: obj})
	}

	output := component.Output
	if filepath.Ext(output) == "" {
		output += domain.ExeExtension()
	}

	link := e.NewTarget(output, domain.Template(e.link.LinkCmd), domain.KindLink, objDeps...)
	link.ForceRebuild = linkForce
	link.Help = "build the " + component.Name + " image"
	return link, nil
}

// makeDepTarget registers the header-dependency target for one source. The
// initial dependency list is whatever the previous run's .d file recorded;
// the post-hook re-reads the freshly emitted file into the engine's
// dep-result map for the compile target's pre-hook to pick up.
func (e *Engine) makeDepTarget(source, depCmd string) (*domain.Target, error) {
	depName := domain.DepFileName(e.BuildDir(), source)

	prior, err := e.parser.ReadFile(depName)
	if err != nil {
		return nil, err
	}
	raw := domain.RawDep(source)
	if len(prior) > 0 {
		raw = domain.RawDep(strings.Join(prior, " "))
	}

	dt := e.NewTarget(depName, domain.Template(depCmd), domain.KindDepend, raw)
	dt.PostHook = func(*domain.Target, bool) {
		deps, err := e.parser.ReadFile(depName)
		if err == nil && len(deps) > 0 {
			e.depResults[source] = deps
		}
	}
	return dt, nil
}

// refreshDepsHook replaces a compile target's raw deps with the header list
// parsed by its dep target earlier in the same run.
func (e *Engine) refreshDepsHook(source string) domain.Hook {
	return func(t *domain.Target, _ bool) {
		if deps := e.depResults[source]; len(deps) > 0 {
			t.RawDeps = []domain.Dep{domain.RawDep(strings.Join(deps, " "))}
		}
	}
}
