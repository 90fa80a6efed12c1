package kstring

import "github.com/I-Am-Dench/kstring/encoding/transcode"

// The pairwise converters transcode a value's content bytes as-is; they do
// not check the value's encoding tag against the conversion's source side.
// Convert is the checked entry point that dispatches on the actual tag.

// convertWith wraps a transcoded buffer into a new value. The result owns
// its buffer when long (Temporary), exactly like New.
func convertWith(str KString, fn func([]byte) []byte, target Encoding) KString {
	if !str.IsValid() {
		return Invalid()
	}
	return newOwned(fn(str.Bytes()), target)
}

// ConvertUtf8ToUtf16LE converts UTF-8 content to a UTF-16LE value.
func ConvertUtf8ToUtf16LE(str KString) KString {
	return convertWith(str, transcode.Utf8ToUtf16LE, Utf16LE)
}

// ConvertUtf8ToUtf16BE converts UTF-8 content to a UTF-16BE value.
func ConvertUtf8ToUtf16BE(str KString) KString {
	return convertWith(str, transcode.Utf8ToUtf16BE, Utf16BE)
}

// ConvertUtf16LEToUtf8 converts UTF-16LE content to a UTF-8 value.
func ConvertUtf16LEToUtf8(str KString) KString {
	return convertWith(str, transcode.Utf16LEToUtf8, Utf8)
}

// ConvertUtf16BEToUtf8 converts UTF-16BE content to a UTF-8 value.
func ConvertUtf16BEToUtf8(str KString) KString {
	return convertWith(str, transcode.Utf16BEToUtf8, Utf8)
}

// ConvertUtf16LEToUtf16BE swaps UTF-16LE content to a UTF-16BE value.
func ConvertUtf16LEToUtf16BE(str KString) KString {
	return convertWith(str, transcode.SwapUtf16, Utf16BE)
}

// ConvertUtf16BEToUtf16LE swaps UTF-16BE content to a UTF-16LE value.
func ConvertUtf16BEToUtf16LE(str KString) KString {
	return convertWith(str, transcode.SwapUtf16, Utf16LE)
}

// ConvertUtf8ToAnsi converts UTF-8 content to a single-byte ANSI value.
// Unmappable code points become '?'.
func ConvertUtf8ToAnsi(str KString) KString {
	return convertWith(str, transcode.Utf8ToAnsi, Ansi)
}

// ConvertAnsiToUtf8 converts single-byte ANSI content to a UTF-8 value
// using the Latin-1 approximation described in package transcode.
func ConvertAnsiToUtf8(str KString) KString {
	return convertWith(str, transcode.AnsiToUtf8, Utf8)
}

// Convert returns str's content re-encoded as target, dispatching on str's
// encoding tag. A same-encoding conversion returns an independent copy.
// Pairs without a direct codec are composed through UTF-8, destroying the
// intermediate value. Long results own their buffer (Temporary). Returns
// Invalid for an invalid str or an encoding outside the defined set.
func (str KString) Convert(target Encoding) KString {
	if !str.IsValid() || target > Ansi {
		return Invalid()
	}

	source := str.Encoding()
	if source == target {
		return newOwned(str.Bytes(), target)
	}

	switch source {
	case Utf8:
		switch target {
		case Utf16LE:
			return ConvertUtf8ToUtf16LE(str)
		case Utf16BE:
			return ConvertUtf8ToUtf16BE(str)
		case Ansi:
			return ConvertUtf8ToAnsi(str)
		}
	case Utf16LE:
		switch target {
		case Utf8:
			return ConvertUtf16LEToUtf8(str)
		case Utf16BE:
			return ConvertUtf16LEToUtf16BE(str)
		}
	case Utf16BE:
		switch target {
		case Utf8:
			return ConvertUtf16BEToUtf8(str)
		case Utf16LE:
			return ConvertUtf16BEToUtf16LE(str)
		}
	case Ansi:
		if target == Utf8 {
			return ConvertAnsiToUtf8(str)
		}
	}

	// No direct codec for this pair: hop through UTF-8.
	intermediate := str.Convert(Utf8)
	if !intermediate.IsValid() {
		return Invalid()
	}

	result := intermediate.Convert(target)
	intermediate.Destroy()
	return result
}
