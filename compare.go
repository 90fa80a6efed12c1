package kstring

import "bytes"

// Compare orders str against other, returning -1, 0, or 1. The order is
// length-first: a shorter value sorts before a longer one regardless of
// content, and only equal-length values are compared byte-wise. This is
// deliberately not plain lexicographic byte order. Invalid values compare
// equal to each other and sort after every real value.
func (str KString) Compare(other KString) int {
	sizeA := headerLength(str.header)
	sizeB := headerLength(other.header)

	if sizeA != sizeB {
		if sizeA < sizeB {
			return -1
		}
		return 1
	}

	if sizeA == invalidLength {
		return 0
	}

	// Equal lengths put both values in the same representation.
	size := int(sizeA)
	if str.IsShort() {
		return bytes.Compare(str.content[:size], other.content[:size])
	}

	// Both long: a single word of inline prefix usually decides.
	if c := bytes.Compare(str.content[:prefixSize], other.content[:prefixSize]); c != 0 {
		return c
	}
	return bytes.Compare(str.buf[:size], other.buf[:size])
}

// Equal reports whether str and other have identical length and content.
func (str KString) Equal(other KString) bool {
	return str.Compare(other) == 0
}

// HasPrefix reports whether str begins with prefix's content. Every value
// starts with the empty string; nothing starts with a prefix longer than
// itself or with Invalid.
func (str KString) HasPrefix(prefix KString) bool {
	if !str.IsValid() || !prefix.IsValid() {
		return false
	}

	size := headerLength(prefix.header)
	if size > headerLength(str.header) {
		return false
	}

	if size == 0 {
		return true
	}

	// The first four content bytes sit inline for every representation,
	// so prefixes of up to four bytes never touch a buffer.
	if size <= prefixSize || (str.IsShort() && prefix.IsShort()) {
		return bytes.Equal(str.content[:size], prefix.content[:size])
	}

	return bytes.Equal(str.raw(headerLength(str.header))[:size], prefix.raw(size))
}

// foldByte lowercases ASCII letters and leaves every other byte alone.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// compareFold is bytes.Compare over equal-length slices with ASCII-only
// case folding. Non-ASCII bytes are compared as-is; this is deliberately
// not Unicode case folding.
func compareFold(a, b []byte) int {
	for i := range a {
		ca := foldByte(a[i])
		cb := foldByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CompareFold is Compare with ASCII-only case-insensitive content
// comparison. Length-first ordering is unchanged.
func (str KString) CompareFold(other KString) int {
	sizeA := headerLength(str.header)
	sizeB := headerLength(other.header)

	if sizeA != sizeB {
		if sizeA < sizeB {
			return -1
		}
		return 1
	}

	if sizeA == invalidLength {
		return 0
	}

	// Equal lengths put both values in the same representation.
	size := int(sizeA)
	if str.IsShort() {
		return compareFold(str.content[:size], other.content[:size])
	}

	if c := compareFold(str.content[:prefixSize], other.content[:prefixSize]); c != 0 {
		return c
	}
	return compareFold(str.buf[:size], other.buf[:size])
}

// EqualFold reports whether str and other are equal under ASCII-only case
// folding.
func (str KString) EqualFold(other KString) bool {
	return str.CompareFold(other) == 0
}

// HasPrefixFold is HasPrefix under ASCII-only case folding.
func (str KString) HasPrefixFold(prefix KString) bool {
	if !str.IsValid() || !prefix.IsValid() {
		return false
	}

	size := headerLength(prefix.header)
	if size > headerLength(str.header) {
		return false
	}

	if size == 0 {
		return true
	}

	if size <= prefixSize || (str.IsShort() && prefix.IsShort()) {
		return compareFold(str.content[:size], prefix.content[:size]) == 0
	}

	return compareFold(str.raw(headerLength(str.header))[:size], prefix.raw(size)) == 0
}
