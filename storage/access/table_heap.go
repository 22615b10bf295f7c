package access

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/dsnet/golib/memfile"
	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
)

// tuple record framing: payload size in bytes, then the payload
var tupleSizePrefixBytes int64 = 4

// TableHeap is an append-only, schema-homogeneous tuple store backed by an
// in-memory file. Operators read it through forward-only iterators and
// append through InsertTuple; they assume exclusive, uncontended access for
// the duration of a call.
type TableHeap struct {
	file      *memfile.File
	schema_   *schema.Schema
	size      int64
	numTuples uint32
	fileMutex *sync.Mutex
}

func NewTableHeap(schema_ *schema.Schema) *TableHeap {
	file := memfile.New(make([]byte, 0))
	return &TableHeap{file, schema_, 0, 0, new(sync.Mutex)}
}

func (h *TableHeap) Schema() *schema.Schema {
	return h.schema_
}

func (h *TableHeap) NumTuples() uint32 {
	return h.numTuples
}

// InsertTuple appends one tuple to the end of the heap. The tuple must match
// the heap's schema shape (field count); per-field type compatibility is
// established by the caller constructing the tuple and is not re-validated.
func (h *TableHeap) InsertTuple(tuple_ *tuple.Tuple) error {
	if tuple_.Count() != h.schema_.GetColumnCount() {
		return common.QueryError{
			Code: common.SchemaMismatchError,
			ErrString: fmt.Sprintf("tuple has %d fields but schema has %d columns",
				tuple_.Count(), h.schema_.GetColumnCount()),
		}
	}

	payload := tuple_.Serialize()
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	record := append(buf.Bytes(), payload...)

	h.fileMutex.Lock()
	defer h.fileMutex.Unlock()

	h.file.WriteAt(record, h.size)
	h.size += int64(len(record))
	h.numTuples++
	return nil
}

// Iterator returns a fresh forward-only iterator positioned at the first
// tuple. Scanning the heap twice means acquiring two independent iterators.
func (h *TableHeap) Iterator() *TableHeapIterator {
	return NewTableHeapIterator(h)
}

// readTupleAt decodes the tuple record starting at offset and returns it
// together with the offset of the following record.
func (h *TableHeap) readTupleAt(offset int64) (*tuple.Tuple, int64) {
	sizeBuf := make([]byte, tupleSizePrefixBytes)
	h.file.ReadAt(sizeBuf, offset)
	var payloadSize uint32
	binary.Read(bytes.NewBuffer(sizeBuf), binary.LittleEndian, &payloadSize)

	payload := make([]byte, payloadSize)
	h.file.ReadAt(payload, offset+tupleSizePrefixBytes)

	nextOffset := offset + tupleSizePrefixBytes + int64(payloadSize)
	return tuple.NewTupleFromBytes(payload, h.schema_), nextOffset
}
