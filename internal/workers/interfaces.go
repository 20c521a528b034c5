// Package workers runs the client's background jobs.
//
// A [Worker] is started with a context and stopped explicitly; [Workers]
// starts and stops a group of them together.
package workers

import "context"

// Worker is a background job.
//
// Start must not block. Stop blocks until the job has exited and is a no-op
// when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
