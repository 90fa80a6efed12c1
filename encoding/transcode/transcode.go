// Package transcode implements the byte-level codecs behind kstring's
// encoding conversions: UTF-8 to and from UTF-16 in either byte order, a
// UTF-16 byte-order swap, and a simplified single-byte ANSI codec.
//
// Every converter recovers from malformed input instead of failing:
// unrecognized UTF-8 lead bytes are skipped, unpaired surrogates are
// dropped, and code points with no ANSI mapping become '?'. Callers that
// need strict validation should validate before converting.
package transcode

import (
	"encoding/binary"
	"unicode/utf16"
)

var (
	le = binary.LittleEndian
	be = binary.BigEndian
)

const (
	surrogateHighMin = 0xD800
	surrogateHighMax = 0xDBFF
	surrogateLowMin  = 0xDC00
	surrogateLowMax  = 0xDFFF
)

// decodeUtf8 decodes b into code points. A lead byte that does not match
// any 1-4 byte form, or that starts a sequence running past the end of b,
// is skipped as a single byte.
func decodeUtf8(b []byte) []rune {
	points := make([]rune, 0, len(b))

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			points = append(points, rune(c))
			i += 1
		case c&0xE0 == 0xC0 && i+1 < len(b):
			points = append(points, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			points = append(points, rune(c&0x0F)<<12|rune(b[i+1]&0x3F)<<6|rune(b[i+2]&0x3F))
			i += 3
		case c&0xF8 == 0xF0 && i+3 < len(b):
			points = append(points, rune(c&0x07)<<18|rune(b[i+1]&0x3F)<<12|rune(b[i+2]&0x3F)<<6|rune(b[i+3]&0x3F))
			i += 4
		default:
			i += 1
		}
	}

	return points
}

func appendUtf8(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r)&0x3F)
	case r < 0x10000:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	default:
		return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12)&0x3F, 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	}
}

func encodeUtf8(points []rune) []byte {
	out := make([]byte, 0, len(points))
	for _, r := range points {
		out = appendUtf8(out, r)
	}
	return out
}

// decodeUtf16 decodes code units in the given byte order, recombining
// surrogate pairs. Unpaired surrogates and a dangling odd byte are
// dropped.
func decodeUtf16(b []byte, order binary.ByteOrder) []rune {
	points := make([]rune, 0, len(b)/2)

	for i := 0; i+1 < len(b); {
		u := order.Uint16(b[i:])
		i += 2

		switch {
		case u >= surrogateHighMin && u <= surrogateHighMax:
			if i+1 < len(b) {
				if lo := order.Uint16(b[i:]); lo >= surrogateLowMin && lo <= surrogateLowMax {
					points = append(points, utf16.DecodeRune(rune(u), rune(lo)))
					i += 2
				}
			}
		case u >= surrogateLowMin && u <= surrogateLowMax:
			// Unpaired low surrogate.
		default:
			points = append(points, rune(u))
		}
	}

	return points
}

func encodeUtf16(points []rune, order binary.ByteOrder) []byte {
	out := make([]byte, 0, len(points)*2)
	unit := [2]byte{}

	for _, r := range points {
		if r <= 0xFFFF {
			order.PutUint16(unit[:], uint16(r))
			out = append(out, unit[0], unit[1])
			continue
		}

		high, low := utf16.EncodeRune(r)
		order.PutUint16(unit[:], uint16(high))
		out = append(out, unit[0], unit[1])
		order.PutUint16(unit[:], uint16(low))
		out = append(out, unit[0], unit[1])
	}

	return out
}

// Utf8ToUtf16LE transcodes UTF-8 content to UTF-16 little-endian.
func Utf8ToUtf16LE(b []byte) []byte {
	return encodeUtf16(decodeUtf8(b), le)
}

// Utf8ToUtf16BE transcodes UTF-8 content to UTF-16 big-endian.
func Utf8ToUtf16BE(b []byte) []byte {
	return encodeUtf16(decodeUtf8(b), be)
}

// Utf16LEToUtf8 transcodes UTF-16 little-endian content to UTF-8.
func Utf16LEToUtf8(b []byte) []byte {
	return encodeUtf8(decodeUtf16(b, le))
}

// Utf16BEToUtf8 transcodes UTF-16 big-endian content to UTF-8.
func Utf16BEToUtf8(b []byte) []byte {
	return encodeUtf8(decodeUtf16(b, be))
}

// SwapUtf16 flips the byte order of each UTF-16 code unit without decoding
// it, so the result is always the same length as the input. A dangling odd
// byte is carried through unchanged.
func SwapUtf16(b []byte) []byte {
	out := make([]byte, len(b))

	for i := 0; i+1 < len(b); i += 2 {
		out[i], out[i+1] = b[i+1], b[i]
	}

	if len(b)%2 != 0 {
		out[len(b)-1] = b[len(b)-1]
	}

	return out
}

// Utf8ToAnsi maps UTF-8 content onto single bytes. Code points up to 0xFF
// keep their value; everything above, including every 3 and 4 byte UTF-8
// sequence, becomes '?'.
func Utf8ToAnsi(b []byte) []byte {
	points := decodeUtf8(b)
	out := make([]byte, 0, len(points))

	for _, r := range points {
		if r <= 0xFF {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}

	return out
}

// AnsiToUtf8 expands single-byte content to UTF-8, treating bytes at and
// above 0x80 as their Latin-1 code point. This approximates Windows-1252,
// whose real table diverges from Latin-1 in the 0x80-0x9F range.
func AnsiToUtf8(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		out = appendUtf8(out, rune(c))
	}
	return out
}
