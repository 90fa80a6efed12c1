// Package kstring implements a compact immutable string value for
// data-intensive code, after the "German string" layout used by Umbra and
// CedarDB.
//
// A KString is a small fixed-shape value: content of up to 12 bytes lives
// inline, longer content lives in an out-of-line buffer alongside an inline
// copy of its first 4 bytes (the prefix) used to short-circuit
// comparisons. Values are immutable once constructed; concatenation,
// substring extraction, and encoding conversion all produce new values.
//
// Out-of-line buffers carry a StorageClass. Only Temporary buffers are
// owned by the value and must be handed to Destroy exactly once; the
// package never allocates or releases Persistent and Transient buffers.
//
// Fallible operations do not return errors. They return the reserved
// invalid value instead, which callers check with IsValid before touching
// content-dependent accessors.
package kstring

import "unsafe"

// KString is an immutable string value. The zero KString is a valid empty
// UTF-8 string. Copying a KString is cheap, but copies of a Temporary
// value share one buffer: exactly one of them may be destroyed.
type KString struct {
	header  uint32
	content [MaxShortLength]byte
	buf     []byte
	class   StorageClass
}

// Invalid returns the reserved error value. It carries no content; only
// IsValid, Size, Encoding, and Destroy are meaningful on it.
func Invalid() KString {
	return KString{header: invalidLength}
}

// New creates a value by copying data. Long content is copied into a
// buffer owned by the result (Temporary), which must eventually be passed
// to Destroy. Returns Invalid for nil data or data longer than MaxLength.
func New(data []byte, encoding Encoding) KString {
	if data == nil {
		return Invalid()
	}
	return newOwned(data, encoding)
}

func newOwned(data []byte, encoding Encoding) KString {
	header, ok := packHeader(uint64(len(data)), encoding)
	if !ok {
		return Invalid()
	}

	str := KString{header: header}

	size := uint32(len(data))
	if isShort(size) {
		// Unused inline bytes stay zero so equal short strings are
		// byte-identical values.
		copy(str.content[:], data)
		return str
	}

	buf := alloc.Allocate(int(size) + 1)
	if buf == nil {
		return Invalid()
	}

	copy(buf, data)
	buf[size] = 0

	copy(str.content[:prefixSize], data)
	str.buf = buf
	str.class = Temporary
	return str
}

// NewPersistent creates a value borrowing data directly, asserting that
// data stays valid and unmodified for the life of the process. No copy is
// made for long content and Destroy never releases it.
func NewPersistent(data []byte, encoding Encoding) KString {
	return newBorrowed(data, encoding, Persistent)
}

// NewTransient creates a value borrowing data directly, asserting that an
// external owner keeps data valid for as long as the value is in use. No
// copy is made for long content and Destroy never releases it.
func NewTransient(data []byte, encoding Encoding) KString {
	return newBorrowed(data, encoding, Transient)
}

func newBorrowed(data []byte, encoding Encoding, class StorageClass) KString {
	if data == nil {
		return Invalid()
	}

	header, ok := packHeader(uint64(len(data)), encoding)
	if !ok {
		return Invalid()
	}

	str := KString{header: header}

	size := uint32(len(data))
	if isShort(size) {
		// Short content is always copied inline; the storage class is
		// irrelevant below the threshold.
		copy(str.content[:], data)
		return str
	}

	copy(str.content[:prefixSize], data)
	str.buf = data
	str.class = class
	return str
}

// FromString creates a value by copying s. Long results are Temporary,
// like New.
func FromString(s string, encoding Encoding) KString {
	return newOwned([]byte(s), encoding)
}

// PersistentFromString creates a value borrowing s's bytes without a copy.
// Go strings are immutable for the life of the process, which is exactly
// the Persistent contract.
func PersistentFromString(s string, encoding Encoding) KString {
	if uint64(len(s)) > MaxLength {
		return Invalid()
	}
	if isShort(uint32(len(s))) {
		return newOwned([]byte(s), encoding)
	}
	return newBorrowed(unsafe.Slice(unsafe.StringData(s), len(s)), encoding, Persistent)
}

// Destroy releases the buffer behind a Temporary out-of-line value. It is
// a no-op for every other value, including Invalid. Each Temporary value
// must be destroyed exactly once; destroying a copy as well releases the
// shared buffer twice.
func (str KString) Destroy() {
	if !str.IsValid() || str.IsShort() {
		return
	}

	if str.class == Temporary {
		alloc.Release(str.buf)
	}
}

// IsValid reports whether str is a real value rather than the reserved
// error result.
func (str KString) IsValid() bool {
	return headerLength(str.header) != invalidLength
}

// Size returns the content length in bytes. Invalid values report 0.
func (str KString) Size() int {
	if !str.IsValid() {
		return 0
	}
	return int(headerLength(str.header))
}

// Encoding returns the value's encoding tag. Invalid values report Utf8.
func (str KString) Encoding() Encoding {
	if !str.IsValid() {
		return Utf8
	}
	return headerEncoding(str.header)
}

// IsShort reports whether the content is stored inline.
func (str KString) IsShort() bool {
	return isShort(headerLength(str.header))
}

// StorageClass returns the class of an out-of-line value. Inline and
// Invalid values report Persistent, since neither requires cleanup.
func (str KString) StorageClass() StorageClass {
	if !str.IsValid() || str.IsShort() {
		return Persistent
	}
	return str.class
}

// raw returns the content bytes without validity checks. size must be
// str's own header length.
func (str KString) raw(size uint32) []byte {
	if isShort(size) {
		return str.content[:size]
	}
	return str.buf[:size]
}

// Bytes returns the content. For out-of-line values the slice aliases the
// value's buffer and must not be modified; for inline values it is a
// fresh copy. Returns nil for Invalid.
func (str KString) Bytes() []byte {
	if !str.IsValid() {
		return nil
	}
	return str.raw(headerLength(str.header))
}

// String returns the content as a Go string copy. The bytes are returned
// as stored, regardless of encoding tag.
func (str KString) String() string {
	return string(str.Bytes())
}

// Terminated returns the content followed by a NUL byte. Out-of-line
// values whose buffer already carries the terminator are returned directly
// without copying, so the slice is only valid as long as the buffer is;
// inline values and borrowed buffers without a terminator get a fresh
// copy. Returns nil for Invalid.
func (str KString) Terminated() []byte {
	if !str.IsValid() {
		return nil
	}

	size := headerLength(str.header)
	if !isShort(size) && uint64(len(str.buf)) > uint64(size) && str.buf[size] == 0 {
		return str.buf[:size+1]
	}

	terminated := make([]byte, size+1)
	copy(terminated, str.raw(size))
	return terminated
}

// Concat produces a new value holding str's content followed by other's.
// Operands must share an encoding; mismatched operands are rejected rather
// than silently mislabeled, so convert one side first. Long results own
// their buffer (Temporary). Returns Invalid if either operand is Invalid,
// the encodings differ, or the combined length exceeds MaxLength.
func (str KString) Concat(other KString) KString {
	if !str.IsValid() || !other.IsValid() {
		return Invalid()
	}

	if str.Encoding() != other.Encoding() {
		return Invalid()
	}

	// The length check happens before any content is touched.
	total := uint64(headerLength(str.header)) + uint64(headerLength(other.header))
	header, ok := packHeader(total, str.Encoding())
	if !ok {
		return Invalid()
	}

	result := KString{header: header}

	if isShort(uint32(total)) {
		n := copy(result.content[:], str.Bytes())
		copy(result.content[n:], other.Bytes())
		return result
	}

	buf := alloc.Allocate(int(total) + 1)
	if buf == nil {
		return Invalid()
	}

	n := copy(buf, str.Bytes())
	copy(buf[n:], other.Bytes())
	buf[total] = 0

	copy(result.content[:prefixSize], buf)
	result.buf = buf
	result.class = Temporary
	return result
}

// Substring extracts size bytes of content starting at offset. Requests
// running past the end are clamped to the available content rather than
// rejected; an offset at or beyond the end is an error. The result
// inherits str's encoding and owns its buffer when long (Temporary).
func (str KString) Substring(offset, size int) KString {
	if !str.IsValid() || offset < 0 || size < 0 {
		return Invalid()
	}

	length := headerLength(str.header)
	if uint64(offset) >= uint64(length) {
		return Invalid()
	}

	if available := int(length) - offset; size > available {
		size = available
	}

	return newOwned(str.raw(length)[offset:offset+size], str.Encoding())
}
