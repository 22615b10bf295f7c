package executors

// Executor runs one relational operator to completion: a single linear pass
// over its input heap(s) appending to the output heap. A returned error
// aborts the call; output appended before the failing row is unreliable and
// must be discarded by the caller.
type Executor interface {
	Execute() error
}
