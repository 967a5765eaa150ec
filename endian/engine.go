// Package endian answers the byte order questions the NBT wire codec
// depends on.
//
// NBT is big-endian on the wire. Scalar fields go through the big-endian
// engine one value at a time, while TAG_Int_Array payloads move as one
// contiguous block and are byte-swapped in memory only when the host is
// little-endian. IsNativeLittleEndian and SwapInt32s are the single
// source of that decision; call sites never repeat the host-order check.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine unifies binary.ByteOrder with binary.AppendByteOrder so a
// codec can hold one value for both indexed and append-style access. It
// is satisfied by binary.BigEndian and binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the engine for the NBT wire order.
func GetBigEndianEngine() EndianEngine { return binary.BigEndian }

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine { return binary.LittleEndian }

// CheckEndianness reports the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	v := uint16(1)
	if *(*byte)(unsafe.Pointer(&v)) == 1 {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// little-endian, which is when bulk wire transfers need a byte swap.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host byte order already matches
// the wire order.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// SwapInt32s reverses the byte order of every element of v in place,
// converting a block of 4-byte integers between wire order and native
// order after a bulk read or before a bulk write.
func SwapInt32s(v []int32) {
	for i, x := range v {
		u := uint32(x)
		v[i] = int32(u<<24 | (u&0xff00)<<8 | (u>>8)&0xff00 | u>>24)
	}
}
