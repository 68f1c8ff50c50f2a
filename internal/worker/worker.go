package worker

import "context"

// Worker - фоновый обработчик, которым управляет WorkerManager
type Worker interface {
	// Start blocks until the worker is stopped or ctx ends.
	Start(ctx context.Context) error

	// Stop signals Start to return
	Stop() error

	Name() string
}
