package kstring

// The header word packs the content length and the encoding tag into a
// single uint32: the low 30 bits hold the length and the high 2 bits hold
// the encoding. The all-ones length pattern is reserved to mark invalid
// values, so the largest representable length is one below it.

const (
	lengthBits = 30
	lengthMask = 1<<lengthBits - 1

	encodingShift = lengthBits

	invalidLength = lengthMask

	// MaxLength is the largest representable content length in bytes.
	MaxLength = invalidLength - 1

	// MaxShortLength is the inline threshold: content up to this many
	// bytes is stored directly inside the value.
	MaxShortLength = 12

	prefixSize = 4
)

// isShort reports whether a length qualifies for the inline representation.
// Every representation decision in the package goes through this predicate.
func isShort(length uint32) bool {
	return length <= MaxShortLength
}

func packHeader(length uint64, encoding Encoding) (uint32, bool) {
	if length > MaxLength || encoding > Ansi {
		return 0, false
	}
	return uint32(length) | uint32(encoding)<<encodingShift, true
}

func headerLength(header uint32) uint32 {
	return header & lengthMask
}

func headerEncoding(header uint32) Encoding {
	return Encoding(header >> encodingShift)
}

// A tagged reference packs a 62 bit body reference and a 2 bit storage
// class into one word. References are offsets or handles meaningful to an
// external body store; packing fails for references that do not fit in the
// reserved bits.

const (
	refBits    = 62
	refMask    = 1<<refBits - 1
	classShift = refBits
)

func packRef(ref uint64, class StorageClass) (uint64, bool) {
	if ref > refMask {
		return 0, false
	}
	return ref | uint64(class)<<classShift, true
}

func unpackRef(word uint64) uint64 {
	return word & refMask
}

func unpackClass(word uint64) StorageClass {
	return StorageClass(word >> classShift)
}
