// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return quickly and spawn goroutines
// internally for their ongoing work.
type Worker interface {
	Run()
}

// Reconciler refreshes a local working copy from the server.
type Reconciler interface {
	Reconcile(ctx context.Context) error
}
