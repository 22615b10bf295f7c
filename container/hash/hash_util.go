package hash

import (
	"bytes"
	"encoding/binary"

	"github.com/ryogrid/SuzumeDB/types"
	"github.com/spaolacci/murmur3"
)

func hashBytes(bytes []byte, length uint32) uint32 {
	// https://github.com/greenplum-db/gpos/blob/b53c1acd6285de94044ff91fbee91589543feba1/libgpos/src/utils.cpp#L126
	var hash uint32 = length
	for i := 0; i < int(length); i++ {
		hash = ((hash << 5) ^ (hash >> 27)) ^ uint32(bytes[i])
	}
	return hash
}

func CombineHashes(l uint32, r uint32) uint32 {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, l)
	binary.Write(buf, binary.LittleEndian, r)
	return hashBytes(buf.Bytes(), 4*2)
}

// HashValue generates the hash used to bucket a value when it serves as a
// grouping key or an equality-join key. Values that compare equal hash
// equal; bucket collisions are resolved by the callers with CompareEquals.
func HashValue(val *types.Value) uint32 {
	raw := val.Serialize()
	// prepend the type tag so that values of different types with identical
	// serialized payloads land in different buckets
	tagged := append([]byte{byte(val.ValueType())}, raw...)
	return GenHashMurMur(tagged)
}

func GenHashMurMur(key []byte) uint32 {
	h := murmur3.New128()
	h.Write(key)

	hash := h.Sum(nil)

	return binary.LittleEndian.Uint32(hash)
}
