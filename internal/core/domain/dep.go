package domain

import "strings"

// Dep is one entry of a target's raw dependency list. The list is
// heterogeneous: whitespace-separated name strings, already-constructed
// nodes, and nested lists may be intermixed.
type Dep interface {
	isDep()
}

// RawDep is a dependency given by name. It may contain several
// whitespace-separated names in one string.
type RawDep string

func (RawDep) isDep() {}

// NodeDep is a dependency given as an already-constructed node.
type NodeDep struct {
	Node Node
}

func (NodeDep) isDep() {}

// NestedDep is a nested dependency list.
type NestedDep []Dep

func (NestedDep) isDep() {}

// RawDeps wraps plain name strings as a dependency list.
func RawDeps(names ...string) []Dep {
	deps := make([]Dep, len(names))
	for i, n := range names {
		deps[i] = RawDep(n)
	}
	return deps
}

// NodeDeps wraps nodes as a dependency list.
func NodeDeps(nodes ...Node) []Dep {
	deps := make([]Dep, len(nodes))
	for i, n := range nodes {
		deps[i] = NodeDep{Node: n}
	}
	return deps
}

// FlattenDeps flattens nested lists and splits raw strings on whitespace,
// preserving order. The result contains only single-name RawDep and NodeDep
// entries.
func FlattenDeps(deps []Dep) []Dep {
	var flat []Dep
	for _, d := range deps {
		switch d := d.(type) {
		case RawDep:
			for _, name := range strings.Fields(string(d)) {
				flat = append(flat, RawDep(name))
			}
		case NodeDep:
			flat = append(flat, d)
		case NestedDep:
			flat = append(flat, FlattenDeps(d)...)
		}
	}
	return flat
}

// DepsEqual reports whether two raw dependency lists are the same. Used to
// detect pre-hook rewrites: node entries compare by identity, raw entries by
// value.
func DepsEqual(a, b []Dep) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch x := a[i].(type) {
		case RawDep:
			y, ok := b[i].(RawDep)
			if !ok || x != y {
				return false
			}
		case NodeDep:
			y, ok := b[i].(NodeDep)
			if !ok || x.Node != y.Node {
				return false
			}
		case NestedDep:
			y, ok := b[i].(NestedDep)
			if !ok || !DepsEqual(x, y) {
				return false
			}
		}
	}
	return true
}
