package inventory

import "context"

// Task is an operation running in the background. Cancel it through the
// context it was started with.
type Task struct {
	done chan struct{}
	err  error
}

// Go runs fn in a new goroutine.
func Go(ctx context.Context, fn func(context.Context) error) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.err = fn(ctx)
	}()
	return t
}

// Done is closed when the operation has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the operation result. It is nil until Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the operation finishes or ctx is done. Giving up on the
// wait does not stop the operation.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
