package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetNotFound is returned when a requested top-level target is not registered.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrCycleDetected is returned when a cycle is detected in the target graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnknownOption is returned when an option name is not registered.
	ErrUnknownOption = zerr.New("unknown option")

	// ErrInvalidOptionValue is returned when an option value fails validation.
	ErrInvalidOptionValue = zerr.New("invalid option value")

	// ErrInvalidBuildMode is returned when the build mode is not one of the known placements.
	ErrInvalidBuildMode = zerr.New("invalid build mode")

	// ErrInvalidDispMode is returned when the display mode is not 'all' or 'summary'.
	ErrInvalidDispMode = zerr.New("invalid display mode")

	// ErrBuildDirCreateFailed is returned when the build output directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrCommandFailed is returned when an external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrThunkFailed is returned when a callable command returns an out-of-band code.
	ErrThunkFailed = zerr.New("callable command failed")

	// ErrFingerprintReadFailed is returned when a persisted fingerprint cannot be read.
	ErrFingerprintReadFailed = zerr.New("failed to read fingerprint")

	// ErrFingerprintWriteFailed is returned when a fingerprint cannot be written.
	ErrFingerprintWriteFailed = zerr.New("failed to write fingerprint")

	// ErrDepFileReadFailed is returned when a compiler dependency file cannot be read.
	ErrDepFileReadFailed = zerr.New("failed to read dependency file")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrNoComponents is returned when the project file declares no components.
	ErrNoComponents = zerr.New("project file declares no components")

	// ErrDuplicateComponent is returned when two components share an output name.
	ErrDuplicateComponent = zerr.New("duplicate component output")

	// ErrBuildFailed is returned when the build traversal fails.
	ErrBuildFailed = zerr.New("build failed")
)
