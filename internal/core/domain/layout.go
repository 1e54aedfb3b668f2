package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// DefaultBuildDir is the default output directory.
	DefaultBuildDir = ".build"

	// FingerprintFilePrefix is the name prefix of persisted tool-configuration
	// records under the build directory (.builddata.comp, .builddata.link).
	FingerprintFilePrefix = ".builddata."

	// DepFileExt is the extension of compiler-emitted dependency files.
	DepFileExt = ".d"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// BuildMode selects where object files are placed.
type BuildMode string

const (
	// BuildModeKeepDir places the object file next to its source.
	BuildModeKeepDir BuildMode = "keep_dir"
	// BuildModeBuildDir flattens object files into the build directory.
	BuildModeBuildDir BuildMode = "build_dir"
	// BuildModeLinearized places object files into the build directory under
	// a linearized form of the full source path.
	BuildModeLinearized BuildMode = "build_dir_linearized"
)

// DispMode selects what is printed when a command runs.
type DispMode string

const (
	// DispModeAll prints the fully expanded command line.
	DispModeAll DispMode = "all"
	// DispModeSummary prints a kind-colored label plus the target name.
	DispModeSummary DispMode = "summary"
)

// Linearize replaces every path separator in a source path with "__",
// producing a flat file name. Paths that already contain "__" can map to
// the same name as a differently nested path.
func Linearize(path string) string {
	path = NormalizeName(path)
	return strings.ReplaceAll(path, "/", "__")
}

// SwapExt replaces the extension of path with ext. A path without an
// extension gets ext appended.
func SwapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// ObjFileName returns the object-file path for a source under the given
// placement mode.
func ObjFileName(mode BuildMode, buildDir, source, objExt string) string {
	source = NormalizeName(source)
	switch mode {
	case BuildModeBuildDir:
		return filepath.ToSlash(filepath.Join(buildDir, SwapExt(filepath.Base(source), objExt)))
	case BuildModeLinearized:
		return filepath.ToSlash(filepath.Join(buildDir, SwapExt(Linearize(source), objExt)))
	default:
		return SwapExt(source, objExt)
	}
}

// DepFileName returns the dependency-file path for a source. Dependency
// files always live linearized under the build directory.
func DepFileName(buildDir, source string) string {
	return filepath.ToSlash(filepath.Join(buildDir, Linearize(source)+DepFileExt))
}

// FingerprintFileName returns the persisted fingerprint path for a component
// class.
func FingerprintFileName(buildDir, class string) string {
	return filepath.ToSlash(filepath.Join(buildDir, FingerprintFilePrefix+class))
}

// ExeExtension returns the platform executable extension appended to
// extensionless link outputs.
func ExeExtension() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
