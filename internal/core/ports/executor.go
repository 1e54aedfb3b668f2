// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running expanded command lines.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs one command line through the OS shell. A non-zero exit
	// code is returned as an error carrying the exit code as metadata.
	Execute(ctx context.Context, command string) error
}
