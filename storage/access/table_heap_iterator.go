package access

import (
	"github.com/ryogrid/SuzumeDB/storage/tuple"
)

// TableHeapIterator is a forward-only, single-pass cursor over a table
// heap. Typical usage:
//
//	for t := it.Current(); !it.End(); t = it.Next() { ... }
type TableHeapIterator struct {
	heap       *TableHeap
	nextOffset int64
	current    *tuple.Tuple
}

func NewTableHeapIterator(heap *TableHeap) *TableHeapIterator {
	it := &TableHeapIterator{heap, 0, nil}
	if heap.size > 0 {
		it.current, it.nextOffset = heap.readTupleAt(0)
	}
	return it
}

// Current returns the tuple under the cursor, or nil past the end.
func (it *TableHeapIterator) Current() *tuple.Tuple {
	return it.current
}

func (it *TableHeapIterator) End() bool {
	return it.current == nil
}

// Next advances the cursor and returns the new current tuple, or nil when
// the scan is exhausted.
func (it *TableHeapIterator) Next() *tuple.Tuple {
	if it.nextOffset >= it.heap.size {
		it.current = nil
		return nil
	}
	it.current, it.nextOffset = it.heap.readTupleAt(it.nextOffset)
	return it.current
}
