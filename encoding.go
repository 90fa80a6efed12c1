package kstring

import "fmt"

// Encoding identifies the byte encoding of a value's content. It is carried
// in the value itself and only ever changes through a conversion.
type Encoding uint8

const (
	Utf8 = Encoding(iota)
	Utf16LE
	Utf16BE
	Ansi
)

func (e Encoding) String() string {
	switch e {
	case Utf8:
		return "utf8"
	case Utf16LE:
		return "utf16le"
	case Utf16BE:
		return "utf16be"
	case Ansi:
		return "ansi"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}
