package transcode_test

import (
	"bytes"
	"testing"

	"github.com/I-Am-Dench/kstring/encoding/transcode"
)

func TestUtf8ToUtf16LE(t *testing.T) {
	cases := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"ascii", []byte("Hi!"), []byte{0x48, 0x00, 0x69, 0x00, 0x21, 0x00}},
		{"two byte form", []byte("é"), []byte{0xE9, 0x00}},
		{"three byte form", []byte("€"), []byte{0xAC, 0x20}},
		{"surrogate pair", []byte("🚀"), []byte{0x3D, 0xD8, 0x80, 0xDE}},
		{"empty", []byte{}, []byte{}},
	}

	for _, c := range cases {
		if actual := transcode.Utf8ToUtf16LE(c.input); !bytes.Equal(actual, c.expected) {
			t.Errorf("%s: expected % x but got % x", c.name, c.expected, actual)
		}
	}
}

func TestUtf8ToUtf16BE(t *testing.T) {
	if actual := transcode.Utf8ToUtf16BE([]byte("🚀")); !bytes.Equal(actual, []byte{0xD8, 0x3D, 0xDE, 0x80}) {
		t.Errorf("expected [d8 3d de 80] but got % x", actual)
	}
}

func TestUtf16RoundTrip(t *testing.T) {
	samples := [][]byte{
		[]byte("plain ascii"),
		[]byte("Grüße aus Köln"),
		[]byte("世界中のこんにちは"),
		[]byte("astral plane: 🚀🧭"),
	}

	for _, sample := range samples {
		le := transcode.Utf8ToUtf16LE(sample)
		if actual := transcode.Utf16LEToUtf8(le); !bytes.Equal(actual, sample) {
			t.Errorf("%q: little-endian round trip produced %q", sample, actual)
		}

		be := transcode.Utf8ToUtf16BE(sample)
		if actual := transcode.Utf16BEToUtf8(be); !bytes.Equal(actual, sample) {
			t.Errorf("%q: big-endian round trip produced %q", sample, actual)
		}
	}
}

func TestMalformedUtf8Skipped(t *testing.T) {
	// 0xFF matches no form; 0xC3 at the end starts a truncated sequence.
	input := []byte{'a', 0xFF, 'b', 0xC3}
	if actual := transcode.Utf8ToUtf16LE(input); !bytes.Equal(actual, []byte{0x61, 0x00, 0x62, 0x00}) {
		t.Errorf("expected the malformed bytes to be skipped but got % x", actual)
	}
}

func TestUnpairedSurrogatesDropped(t *testing.T) {
	// High surrogate followed by a regular unit, then a lone low surrogate.
	input := []byte{0x3D, 0xD8, 0x41, 0x00, 0x34, 0xDC}
	if actual := transcode.Utf16LEToUtf8(input); !bytes.Equal(actual, []byte("A")) {
		t.Errorf("expected \"A\" but got %q", actual)
	}
}

func TestSwapUtf16(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04}
	swapped := transcode.SwapUtf16(input)

	if !bytes.Equal(swapped, []byte{0x02, 0x01, 0x04, 0x03}) {
		t.Errorf("expected [02 01 04 03] but got % x", swapped)
	}

	if actual := transcode.SwapUtf16(swapped); !bytes.Equal(actual, input) {
		t.Error("expected a double swap to be the identity")
	}

	odd := []byte{0x01, 0x02, 0x03}
	if actual := transcode.SwapUtf16(odd); !bytes.Equal(actual, []byte{0x02, 0x01, 0x03}) {
		t.Errorf("expected the dangling byte to pass through but got % x", actual)
	}
}

func TestUtf8ToAnsi(t *testing.T) {
	cases := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"ascii", []byte("Hello"), []byte("Hello")},
		{"latin-1 range", []byte("Aé"), []byte{'A', 0xE9}},
		{"above the single-byte range", []byte("a→b"), []byte("a?b")},
		{"astral", []byte("🚀"), []byte("?")},
	}

	for _, c := range cases {
		if actual := transcode.Utf8ToAnsi(c.input); !bytes.Equal(actual, c.expected) {
			t.Errorf("%s: expected % x but got % x", c.name, c.expected, actual)
		}
	}
}

func TestAnsiToUtf8(t *testing.T) {
	// Bytes at and above 0x80 expand as their Latin-1 code points,
	// including the 0x80-0x9F range where real Windows-1252 differs.
	input := []byte{'A', 0xE9, 0x80}
	expected := []byte{'A', 0xC3, 0xA9, 0xC2, 0x80}

	if actual := transcode.AnsiToUtf8(input); !bytes.Equal(actual, expected) {
		t.Errorf("expected % x but got % x", expected, actual)
	}
}

func TestAnsiRoundTrip(t *testing.T) {
	input := []byte{'p', 'l', 'a', 'i', 'n', ' ', 0xE9, 0xFC, 0xDF}
	if actual := transcode.Utf8ToAnsi(transcode.AnsiToUtf8(input)); !bytes.Equal(actual, input) {
		t.Errorf("expected the round trip to reproduce the input but got % x", actual)
	}
}
