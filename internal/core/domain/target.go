// Package domain contains the core data model for the target graph.
package domain

import "strings"

// PhonyPrefix marks a target name as phony: an abstract goal with no output file.
const PhonyPrefix = "#phony"

// Kind classifies a target for display purposes only.
type Kind string

const (
	// KindCompile is a C compilation step.
	KindCompile Kind = "compile"
	// KindAssemble is an assembly step.
	KindAssemble Kind = "assemble"
	// KindDepend is a compiler header-dependency pass emitting a .d file.
	KindDepend Kind = "depend"
	// KindLink is the final link step.
	KindLink Kind = "link"
	// KindGeneric is any other command-bearing target.
	KindGeneric Kind = "generic"
	// KindPhony is an abstract aggregator goal.
	KindPhony Kind = "phony"
)

// Label returns the short tag printed in summary display mode.
func (k Kind) Label() string {
	switch k {
	case KindCompile:
		return "CC"
	case KindAssemble:
		return "AS"
	case KindDepend:
		return "DEP"
	case KindLink:
		return "LD"
	case KindPhony:
		return "ALL"
	default:
		return "GEN"
	}
}

// IsPhony reports whether the name denotes a phony target.
func IsPhony(name string) bool {
	return strings.HasPrefix(name, PhonyPrefix)
}

// NormalizeName folds all path separators in a target name to forward slashes.
// After normalization `a\b` and `a/b` are the same target.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

// Node is a resolved member of a target's dependency list: either a *Target
// or a *FileDep.
type Node interface {
	// TargetName returns the output path of the node, or "" for phony targets.
	TargetName() string
}

// Hook is a pre- or post-build callback. willRun reports whether the
// target's command is (pre) or was (post) going to run.
type Hook func(t *Target, willRun bool)

// Target is a node in the build graph.
//
// RawDeps is retained alongside Resolved because pre-hooks may replace it,
// which forces re-resolution before the command runs. Command never changes
// after construction; only flags, hooks and deps do.
type Target struct {
	Name         string
	Kind         Kind
	Command      Command
	RawDeps      []Dep
	PreHook      Hook
	PostHook     Hook
	ForceRebuild bool
	ExtraArgs    any
	Help         string

	// Resolved is the dependency list derived from RawDeps before the most
	// recent build attempt. Rebuilt on every attempt.
	Resolved []Node
}

// TargetName returns the output path, or "" if the target is phony.
func (t *Target) TargetName() string {
	if IsPhony(t.Name) {
		return ""
	}
	return t.Name
}

// FileDep is a leaf pseudo-target wrapping a plain source file. Its build is
// a pure staleness query against the consumer's timestamp.
type FileDep struct {
	Path     string
	Consumer string
}

// TargetName returns the wrapped path.
func (f *FileDep) TargetName() string {
	return f.Path
}
