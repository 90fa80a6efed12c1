package kstring

import (
	"encoding/binary"
	"errors"
)

// A Record is the bit-exact 16 byte serialized form of a value, for string
// tables that keep long bodies in an external store:
//
//	[0:4]  header word (30 bit length, 2 bit encoding)
//	[4:16] inline content for short values, or
//	[4:8]  content prefix and
//	[8:16] tagged reference word (62 bit body reference, 2 bit class)
//	       for long values
//
// The body reference is an offset or handle meaningful only to the
// surrounding store; resolving it back into bytes is the store's job.
type Record [RecordSize]byte

// RecordSize is the serialized size of every value.
const RecordSize = 16

var (
	order = binary.LittleEndian

	ErrRefOverflow = errors.New("kstring: record: body reference exceeds 62 bits")
)

// EncodeRecord serializes str. Short and Invalid values ignore bodyRef;
// long values pack bodyRef and their storage class into the reference
// word. Fails only when bodyRef does not fit in the reserved 62 bits.
func (str KString) EncodeRecord(bodyRef uint64) (Record, error) {
	rec := Record{}
	order.PutUint32(rec[:4], str.header)

	if !str.IsValid() || str.IsShort() {
		copy(rec[4:], str.content[:])
		return rec, nil
	}

	word, ok := packRef(bodyRef, str.class)
	if !ok {
		return Record{}, ErrRefOverflow
	}

	copy(rec[4:8], str.content[:prefixSize])
	order.PutUint64(rec[8:], word)
	return rec, nil
}

// DecodeRecord rebuilds a value from its record. Short records yield a
// complete value on their own. For long records, resolve is called with
// the body reference and the required byte count (content plus NUL
// terminator) and must return a slice of at least the content length,
// which the rebuilt value borrows under its recorded storage class; a
// Temporary result takes ownership of the resolved buffer. Returns Invalid
// for an invalid header, a nil resolver, or a short resolver result.
func DecodeRecord(rec Record, resolve func(ref uint64, size uint32) []byte) KString {
	header := order.Uint32(rec[:4])
	length := headerLength(header)

	if length == invalidLength {
		return Invalid()
	}

	str := KString{header: header}

	if isShort(length) {
		copy(str.content[:], rec[4:])
		return str
	}

	if resolve == nil {
		return Invalid()
	}

	word := order.Uint64(rec[8:])
	body := resolve(unpackRef(word), length+1)
	if uint64(len(body)) < uint64(length) {
		return Invalid()
	}

	copy(str.content[:prefixSize], rec[4:8])
	str.buf = body
	str.class = unpackClass(word)
	return str
}
