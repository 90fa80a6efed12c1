package kstring_test

import (
	"testing"

	"github.com/I-Am-Dench/kstring"
)

func TestCompareLengthFirst(t *testing.T) {
	a := kstring.FromString("a", kstring.Utf8)
	zz := kstring.FromString("zz", kstring.Utf8)

	// Shorter sorts first even though 'z' > 'a' byte-wise; this ordering
	// is length-first, not lexicographic.
	if c := a.Compare(zz); c != -1 {
		t.Errorf("expected -1 but got %d", c)
	}

	if c := zz.Compare(a); c != 1 {
		t.Errorf("expected 1 but got %d", c)
	}

	apple := kstring.FromString("Apple", kstring.Utf8)
	banana := kstring.FromString("Banana", kstring.Utf8)

	if c := apple.Compare(banana); c >= 0 {
		t.Errorf("expected a negative comparison but got %d", c)
	}

	if c := apple.Compare(kstring.FromString("Apple", kstring.Utf8)); c != 0 {
		t.Errorf("expected 0 but got %d", c)
	}
}

func TestCompareAntisymmetry(t *testing.T) {
	samples := []string{
		"",
		"a",
		"z",
		"Apple",
		"Banana",
		"exactly12ch.",
		"a string body beyond the inline threshold",
		"a string body beyond the inline thresholder",
		"b string body beyond the inline threshold",
		"a string body differing past the fourth byte",
	}

	for _, a := range samples {
		for _, b := range samples {
			strA := kstring.FromString(a, kstring.Utf8)
			strB := kstring.FromString(b, kstring.Utf8)

			forward := strA.Compare(strB)
			backward := strB.Compare(strA)

			if forward != -backward {
				t.Errorf("%q vs %q: expected antisymmetry but got %d and %d", a, b, forward, backward)
			}

			if equal := strA.Equal(strB); equal != (forward == 0) {
				t.Errorf("%q vs %q: Equal disagrees with Compare", a, b)
			}

			strA.Destroy()
			strB.Destroy()
		}
	}
}

func TestCompareLongPrefixFastPath(t *testing.T) {
	// Same length, difference inside the first four bytes.
	a := kstring.FromString("abcX string body beyond the threshold", kstring.Utf8)
	b := kstring.FromString("abcY string body beyond the threshold", kstring.Utf8)
	defer a.Destroy()
	defer b.Destroy()

	if c := a.Compare(b); c != -1 {
		t.Errorf("expected -1 but got %d", c)
	}

	// Same length, identical prefix, difference beyond the fourth byte.
	c := kstring.FromString("abcd string body beyond the threshold", kstring.Utf8)
	d := kstring.FromString("abcd string body beyond the threshole", kstring.Utf8)
	defer c.Destroy()
	defer d.Destroy()

	if cmp := c.Compare(d); cmp != -1 {
		t.Errorf("expected -1 but got %d", cmp)
	}
}

func TestCompareInvalid(t *testing.T) {
	if c := kstring.Invalid().Compare(kstring.Invalid()); c != 0 {
		t.Errorf("expected two invalid values to compare equal but got %d", c)
	}

	str := kstring.FromString("real", kstring.Utf8)
	if c := str.Compare(kstring.Invalid()); c != -1 {
		t.Errorf("expected the invalid value to sort last but got %d", c)
	}
}

func TestHasPrefix(t *testing.T) {
	str := kstring.FromString("a string body beyond the inline threshold", kstring.Utf8)
	defer str.Destroy()

	cases := []struct {
		prefix   string
		expected bool
	}{
		{"", true},
		{"a", true},
		{"a st", true},                 // stored prefix only
		{"a strin", true},              // inline prefix operand, buffer comparison
		{"a string body beyond", true}, // long prefix operand
		{"b", false},
		{"a str?", false},
		{"a string body beyond the inline threshold plus more", false},
	}

	for _, c := range cases {
		prefix := kstring.FromString(c.prefix, kstring.Utf8)

		if actual := str.HasPrefix(prefix); actual != c.expected {
			t.Errorf("prefix %q: expected %t but got %t", c.prefix, c.expected, actual)
		}

		prefix.Destroy()
	}

	short := kstring.FromString("short", kstring.Utf8)
	if !short.HasPrefix(kstring.FromString("sho", kstring.Utf8)) {
		t.Error("expected an inline value to start with its own head")
	}

	if short.HasPrefix(str) {
		t.Error("expected a prefix longer than the value to be rejected")
	}

	if short.HasPrefix(kstring.Invalid()) {
		t.Error("expected the invalid prefix to be rejected")
	}
}

func TestFoldComparisons(t *testing.T) {
	upper := kstring.FromString("HELLO", kstring.Utf8)
	lower := kstring.FromString("hello", kstring.Utf8)

	if !upper.EqualFold(lower) {
		t.Error("expected case-insensitive equality")
	}

	if upper.Equal(lower) {
		t.Error("expected case-sensitive inequality")
	}

	if c := upper.CompareFold(lower); c != 0 {
		t.Errorf("expected 0 but got %d", c)
	}

	// Non-ASCII bytes are compared as-is.
	a := kstring.New([]byte{0xC3, 0x89}, kstring.Utf8) // É
	b := kstring.New([]byte{0xC3, 0xA9}, kstring.Utf8) // é
	if a.EqualFold(b) {
		t.Error("expected non-ASCII bytes to be compared without folding")
	}

	longUpper := kstring.FromString("A STRING BODY BEYOND THE INLINE THRESHOLD", kstring.Utf8)
	longLower := kstring.FromString("a string body beyond the inline threshold", kstring.Utf8)
	defer longUpper.Destroy()
	defer longLower.Destroy()

	if !longUpper.EqualFold(longLower) {
		t.Error("expected case-insensitive equality for out-of-line values")
	}

	if !longUpper.HasPrefixFold(kstring.FromString("a st", kstring.Utf8)) {
		t.Error("expected a case-insensitive stored-prefix match")
	}

	if !longUpper.HasPrefixFold(kstring.FromString("a string", kstring.Utf8)) {
		t.Error("expected a case-insensitive buffer match")
	}

	if longUpper.HasPrefixFold(kstring.FromString("b st", kstring.Utf8)) {
		t.Error("expected a mismatched fold prefix to be rejected")
	}
}

func TestFoldLengthFirst(t *testing.T) {
	a := kstring.FromString("A", kstring.Utf8)
	zz := kstring.FromString("zz", kstring.Utf8)

	if c := a.CompareFold(zz); c != -1 {
		t.Errorf("expected -1 but got %d", c)
	}
}
