package wire

import (
	"io"
	"unsafe"

	"github.com/theJ8910/jnbt/endian"
	"github.com/theJ8910/jnbt/internal/pool"
)

// nativeLittle is the single knob that decides whether bulk int transfer
// byte-swaps. The in-memory representation of a TAG_Int_Array is always
// native-endian; the wire stays big-endian.
var nativeLittle = endian.IsNativeLittleEndian()

// ReadInt32s reads n contiguous 4-byte big-endian signed integers from r
// as one block, byte-swapping the result in place on little-endian hosts.
func ReadInt32s(r io.Reader, n int) ([]int32, error) {
	if n == 0 {
		return nil, nil
	}

	v := make([]int32, n)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), 4*n)
	if err := ReadExact(r, buf); err != nil {
		return nil, err
	}
	if nativeLittle {
		endian.SwapInt32s(v)
	}

	return v, nil
}

// WriteInt32s writes v to w as contiguous 4-byte big-endian signed
// integers. The caller's slice is never mutated: the block is staged
// through a pooled buffer and byte-swapped there on little-endian hosts.
func WriteInt32s(w io.Writer, v []int32) error {
	if len(v) == 0 {
		return nil
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	bb.ExtendOrGrow(4 * len(v))
	staged := unsafe.Slice((*int32)(unsafe.Pointer(&bb.B[0])), len(v))
	copy(staged, v)
	if nativeLittle {
		endian.SwapInt32s(staged)
	}

	_, err := w.Write(bb.B)

	return err
}
