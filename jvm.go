package jvmruntime

// PrimitiveStore is a packed little-endian byte region backing primitive
// field storage. Offsets are the storage indices assigned by layout.
type PrimitiveStore interface {
	ReadU8(offset int) uint8
	ReadU16(offset int) uint16
	ReadU32(offset int) uint32
	ReadU64(offset int) uint64
	WriteU8(offset int, value uint8)
	WriteU16(offset int, value uint16)
	WriteU32(offset int, value uint32)
	WriteU64(offset int, value uint64)
}

// RefStore is an array of reference slots backing reference field storage.
// Indices are the storage indices assigned by layout.
type RefStore interface {
	RefAt(index int) any
	SetRefAt(index int, value any)
	RefLen() int
}
