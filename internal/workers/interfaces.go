// Package workers runs the application's background workers (the sync
// scheduler today, future maintenance jobs tomorrow) as one unit.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every registered worker together.
package workers

import "context"

// Worker is a long-running background job. Run blocks until Stop is called or
// ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
