package kstring

import "fmt"

// StorageClass records who owns an out-of-line buffer and therefore who is
// responsible for its lifetime. Inline values have no storage class.
type StorageClass uint8

const (
	// Persistent buffers stay valid for the life of the process and are
	// never released by this package.
	Persistent = StorageClass(iota)

	// Transient buffers belong to an external owner and are only valid as
	// long as that owner keeps them alive. The package never allocates or
	// releases them; callers must not retain a transient value past the
	// owner's validity window.
	Transient

	// Temporary buffers are allocated by this package and must be released
	// exactly once through Destroy.
	Temporary
)

func (c StorageClass) String() string {
	switch c {
	case Persistent:
		return "persistent"
	case Transient:
		return "transient"
	case Temporary:
		return "temporary"
	default:
		return fmt.Sprintf("StorageClass(%d)", uint8(c))
	}
}

// Allocator supplies the buffers backing Temporary out-of-line values.
// Implementations must return zero-initialized memory.
type Allocator interface {
	// Allocate returns a zeroed buffer of length n whose capacity is
	// rounded up to an 8 byte boundary. A zero n returns nil without
	// touching the heap.
	Allocate(n int) []byte

	// Release gives back a buffer obtained from Allocate. A nil buffer is
	// a no-op. A live buffer must not be released twice.
	Release(buf []byte)
}

const allocAlign = 8

type heapAllocator struct{}

func (heapAllocator) Allocate(n int) []byte {
	if n == 0 {
		return nil
	}
	return make([]byte, n, (n+allocAlign-1)&^(allocAlign-1))
}

// The garbage collector reclaims heap buffers once the value is dropped.
func (heapAllocator) Release(buf []byte) {}

var alloc Allocator = heapAllocator{}

// SetAllocator replaces the allocator used for Temporary buffers and
// returns the previous one. Passing nil restores the default heap
// allocator. Swapping allocators while Temporary values are live splits
// their Allocate/Release pairs across allocators, so do this only at
// startup or in tests.
func SetAllocator(a Allocator) Allocator {
	previous := alloc
	if a == nil {
		a = heapAllocator{}
	}
	alloc = a
	return previous
}
