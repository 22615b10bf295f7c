package executors

import (
	"github.com/ryogrid/SuzumeDB/storage/access"
)

// ExecutorContext carries the table heaps one operator invocation works on.
// Heaps are owned by the caller; executors only read the input(s) and
// append to the output.
type ExecutorContext struct {
	in    *access.TableHeap
	right *access.TableHeap // join only
	out   *access.TableHeap
}

func NewExecutorContext(in *access.TableHeap, out *access.TableHeap) *ExecutorContext {
	return &ExecutorContext{in, nil, out}
}

func NewJoinExecutorContext(left *access.TableHeap, right *access.TableHeap, out *access.TableHeap) *ExecutorContext {
	return &ExecutorContext{left, right, out}
}

func (e *ExecutorContext) GetInput() *access.TableHeap {
	return e.in
}

// GetLeft returns the build-side heap of a join (same slot as GetInput).
func (e *ExecutorContext) GetLeft() *access.TableHeap {
	return e.in
}

func (e *ExecutorContext) GetRight() *access.TableHeap {
	return e.right
}

func (e *ExecutorContext) GetOutput() *access.TableHeap {
	return e.out
}
