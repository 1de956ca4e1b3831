package alloc

import (
	"encoding/binary"
	"fmt"
	"math"

	jvmruntime "github.com/wippyai/jvm-runtime"
	"github.com/wippyai/jvm-runtime/kind"
	"github.com/wippyai/jvm-runtime/layout"
)

// storage backs one partition of a layout: a packed little-endian primitive
// byte region plus a reference slot array. The aggregate counts of a layout
// Result are the sizing contract; storage indices assigned by the builder
// address directly into these two regions.
type storage struct {
	primitives []byte
	refs       []any
	static     bool
}

// InstanceStorage holds the field values of one object instance,
// inherited and hidden fields included.
type InstanceStorage struct {
	storage
}

// NewInstanceStorage allocates zeroed instance storage sized from the
// layout's instance aggregates.
func NewInstanceStorage(res *layout.Result) *InstanceStorage {
	return &InstanceStorage{storage{
		primitives: make([]byte, res.PrimitiveInstanceBytes()),
		refs:       make([]any, res.InstanceRefCount()),
	}}
}

// StaticStorage holds one class's static field values. It is materialized
// at preparation time, per class, never shared with subclasses.
type StaticStorage struct {
	storage
}

// NewStaticStorage allocates zeroed static storage sized from the layout's
// static aggregates.
func NewStaticStorage(res *layout.Result) *StaticStorage {
	return &StaticStorage{storage{
		primitives: make([]byte, res.PrimitiveStaticBytes()),
		refs:       make([]any, res.StaticRefCount()),
		static:     true,
	}}
}

var (
	_ jvmruntime.PrimitiveStore = (*InstanceStorage)(nil)
	_ jvmruntime.RefStore       = (*InstanceStorage)(nil)
	_ jvmruntime.PrimitiveStore = (*StaticStorage)(nil)
	_ jvmruntime.RefStore       = (*StaticStorage)(nil)
)

// checkField guards every typed accessor. A kind or partition mismatch means
// the caller resolved a field against the wrong class or table; reading on
// anyway would return bytes belonging to a different field.
func (s *storage) checkField(f *layout.Field, want kind.Kind) {
	if f.Kind != want {
		panic(fmt.Sprintf("alloc: field %s is %s, accessed as %s", f.Name, f.Kind, want))
	}
	if f.Static != s.static {
		panic(fmt.Sprintf("alloc: field %s accessed against the wrong partition", f.Name))
	}
}

func (s *storage) GetBoolean(f *layout.Field) bool {
	s.checkField(f, kind.Boolean)
	return s.primitives[f.StorageIndex] != 0
}

func (s *storage) SetBoolean(f *layout.Field, v bool) {
	s.checkField(f, kind.Boolean)
	if v {
		s.primitives[f.StorageIndex] = 1
	} else {
		s.primitives[f.StorageIndex] = 0
	}
}

func (s *storage) GetByte(f *layout.Field) int8 {
	s.checkField(f, kind.Byte)
	return int8(s.primitives[f.StorageIndex])
}

func (s *storage) SetByte(f *layout.Field, v int8) {
	s.checkField(f, kind.Byte)
	s.primitives[f.StorageIndex] = byte(v)
}

func (s *storage) GetShort(f *layout.Field) int16 {
	s.checkField(f, kind.Short)
	return int16(s.ReadU16(f.StorageIndex))
}

func (s *storage) SetShort(f *layout.Field, v int16) {
	s.checkField(f, kind.Short)
	s.WriteU16(f.StorageIndex, uint16(v))
}

func (s *storage) GetChar(f *layout.Field) uint16 {
	s.checkField(f, kind.Char)
	return s.ReadU16(f.StorageIndex)
}

func (s *storage) SetChar(f *layout.Field, v uint16) {
	s.checkField(f, kind.Char)
	s.WriteU16(f.StorageIndex, v)
}

func (s *storage) GetInt(f *layout.Field) int32 {
	s.checkField(f, kind.Int)
	return int32(s.ReadU32(f.StorageIndex))
}

func (s *storage) SetInt(f *layout.Field, v int32) {
	s.checkField(f, kind.Int)
	s.WriteU32(f.StorageIndex, uint32(v))
}

func (s *storage) GetFloat(f *layout.Field) float32 {
	s.checkField(f, kind.Float)
	return math.Float32frombits(s.ReadU32(f.StorageIndex))
}

func (s *storage) SetFloat(f *layout.Field, v float32) {
	s.checkField(f, kind.Float)
	s.WriteU32(f.StorageIndex, math.Float32bits(v))
}

func (s *storage) GetLong(f *layout.Field) int64 {
	s.checkField(f, kind.Long)
	return int64(s.ReadU64(f.StorageIndex))
}

func (s *storage) SetLong(f *layout.Field, v int64) {
	s.checkField(f, kind.Long)
	s.WriteU64(f.StorageIndex, uint64(v))
}

func (s *storage) GetDouble(f *layout.Field) float64 {
	s.checkField(f, kind.Double)
	return math.Float64frombits(s.ReadU64(f.StorageIndex))
}

func (s *storage) SetDouble(f *layout.Field, v float64) {
	s.checkField(f, kind.Double)
	s.WriteU64(f.StorageIndex, math.Float64bits(v))
}

func (s *storage) GetRef(f *layout.Field) any {
	s.checkField(f, kind.Object)
	return s.refs[f.StorageIndex]
}

func (s *storage) SetRef(f *layout.Field, v any) {
	s.checkField(f, kind.Object)
	s.refs[f.StorageIndex] = v
}

// Raw region access, offset-addressed. These implement the root package's
// PrimitiveStore and RefStore interfaces for interpreter plumbing that works
// below the typed field API.

func (s *storage) ReadU8(offset int) uint8 {
	return s.primitives[offset]
}

func (s *storage) ReadU16(offset int) uint16 {
	return binary.LittleEndian.Uint16(s.primitives[offset:])
}

func (s *storage) ReadU32(offset int) uint32 {
	return binary.LittleEndian.Uint32(s.primitives[offset:])
}

func (s *storage) ReadU64(offset int) uint64 {
	return binary.LittleEndian.Uint64(s.primitives[offset:])
}

func (s *storage) WriteU8(offset int, value uint8) {
	s.primitives[offset] = value
}

func (s *storage) WriteU16(offset int, value uint16) {
	binary.LittleEndian.PutUint16(s.primitives[offset:], value)
}

func (s *storage) WriteU32(offset int, value uint32) {
	binary.LittleEndian.PutUint32(s.primitives[offset:], value)
}

func (s *storage) WriteU64(offset int, value uint64) {
	binary.LittleEndian.PutUint64(s.primitives[offset:], value)
}

func (s *storage) RefAt(index int) any {
	return s.refs[index]
}

func (s *storage) SetRefAt(index int, value any) {
	s.refs[index] = value
}

func (s *storage) RefLen() int {
	return len(s.refs)
}

// PrimitiveLen returns the size of the packed primitive region in bytes.
func (s *storage) PrimitiveLen() int {
	return len(s.primitives)
}
