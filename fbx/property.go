// Package fbx implements the in-memory FBX 7.4 document model: typed
// properties, the named record ("Node") tree, and the binary/ASCII dual
// emitter described by the FBX interchange format.
package fbx

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidProperty is returned when a Property carries a tag the emitter
// does not recognize. Since Property values can only be constructed through
// the typed New* functions below, seeing this error means a Property was
// built by hand with an invalid tag, which is a caller bug.
var ErrInvalidProperty = errors.New("fbx: invalid property tag")

// Tag identifies one of the thirteen FBX property wire types.
type Tag byte

const (
	TagBool        Tag = 'C'
	TagInt16       Tag = 'Y'
	TagInt32       Tag = 'I'
	TagFloat32     Tag = 'F'
	TagFloat64     Tag = 'D'
	TagInt64       Tag = 'L'
	TagString      Tag = 'S'
	TagRaw         Tag = 'R'
	TagInt32Array  Tag = 'i'
	TagFloat64Array Tag = 'd'
	TagFloat32Array Tag = 'f'
	TagInt64Array   Tag = 'l'
	TagBoolArray    Tag = 'b'
)

// arrayEncodingUncompressed is the only array encoding this module ever
// writes; zip-compressed arrays are a declared Non-goal.
const arrayEncodingUncompressed uint32 = 0

// Property is one self-describing leaf value inside a Node. It is
// constructed exclusively through the New* functions in this file: there is
// intentionally no constructor taking interface{}, so a caller cannot
// silently coerce the wrong Go type into the wrong FBX tag (see DESIGN.md,
// Open Question (d)).
type Property struct {
	tag    Tag
	scalar interface{}
	arrInt []int32
	arrF64 []float64
	arrF32 []float32
	arrI64 []int64
	arrB   []bool
}

func NewBool(v bool) *Property        { return &Property{tag: TagBool, scalar: v} }
func NewInt16(v int16) *Property      { return &Property{tag: TagInt16, scalar: v} }
func NewInt32(v int32) *Property      { return &Property{tag: TagInt32, scalar: v} }
func NewFloat32(v float32) *Property  { return &Property{tag: TagFloat32, scalar: v} }
func NewFloat64(v float64) *Property  { return &Property{tag: TagFloat64, scalar: v} }
func NewInt64(v int64) *Property      { return &Property{tag: TagInt64, scalar: v} }
func NewString(v string) *Property    { return &Property{tag: TagString, scalar: v} }
func NewRaw(v []byte) *Property       { return &Property{tag: TagRaw, scalar: append([]byte(nil), v...)} }

func NewInt32Array(v []int32) *Property {
	return &Property{tag: TagInt32Array, arrInt: v}
}
func NewFloat64Array(v []float64) *Property {
	return &Property{tag: TagFloat64Array, arrF64: v}
}
func NewFloat32Array(v []float32) *Property {
	return &Property{tag: TagFloat32Array, arrF32: v}
}
func NewInt64Array(v []int64) *Property {
	return &Property{tag: TagInt64Array, arrI64: v}
}
func NewBoolArray(v []bool) *Property {
	return &Property{tag: TagBoolArray, arrB: v}
}

// Tag reports the property's wire type.
func (p *Property) Tag() Tag { return p.tag }

// Bool, Int16, Int32, Float32, Float64, Int64, StringValue and Raw return a
// scalar property's value. Each panics if Tag() does not match, the same
// contract Go's own type assertions carry.
func (p *Property) Bool() bool          { return p.scalar.(bool) }
func (p *Property) Int16() int16        { return p.scalar.(int16) }
func (p *Property) Int32() int32        { return p.scalar.(int32) }
func (p *Property) Float32() float32    { return p.scalar.(float32) }
func (p *Property) Float64() float64    { return p.scalar.(float64) }
func (p *Property) Int64() int64        { return p.scalar.(int64) }
func (p *Property) StringValue() string { return p.scalar.(string) }
func (p *Property) Raw() []byte         { return p.scalar.([]byte) }

// Int32Array, Float64Array, Float32Array, Int64Array and BoolArray return
// an array property's backing slice.
func (p *Property) Int32Array() []int32     { return p.arrInt }
func (p *Property) Float64Array() []float64 { return p.arrF64 }
func (p *Property) Float32Array() []float32 { return p.arrF32 }
func (p *Property) Int64Array() []int64     { return p.arrI64 }
func (p *Property) BoolArray() []bool       { return p.arrB }

func elementWidth(tag Tag) int {
	switch tag {
	case TagBool, TagBoolArray:
		return 1
	case TagInt16:
		return 2
	case TagInt32, TagFloat32, TagInt32Array, TagFloat32Array:
		return 4
	case TagFloat64, TagInt64, TagFloat64Array, TagInt64Array:
		return 8
	}
	return 0
}

// WireSize returns the number of bytes EmitBinary will write for this
// property, tag byte included.
func (p *Property) WireSize() int {
	switch p.tag {
	case TagBool:
		return 1 + 1
	case TagInt16:
		return 1 + 2
	case TagInt32, TagFloat32:
		return 1 + 4
	case TagFloat64, TagInt64:
		return 1 + 8
	case TagString:
		return 1 + 4 + len(p.scalar.(string))
	case TagRaw:
		return 1 + 4 + len(p.scalar.([]byte))
	case TagInt32Array:
		return 1 + 12 + len(p.arrInt)*elementWidth(TagInt32Array)
	case TagFloat64Array:
		return 1 + 12 + len(p.arrF64)*elementWidth(TagFloat64Array)
	case TagFloat32Array:
		return 1 + 12 + len(p.arrF32)*elementWidth(TagFloat32Array)
	case TagInt64Array:
		return 1 + 12 + len(p.arrI64)*elementWidth(TagInt64Array)
	case TagBoolArray:
		return 1 + 12 + len(p.arrB)*elementWidth(TagBoolArray)
	}
	return 0
}

// EmitBinary writes the property's one-byte tag followed by its payload, as
// specified in spec.md §4.1: all multi-byte numerics little-endian, arrays
// wrapped in the u32 count|encoding|payload_bytes envelope.
func (p *Property) EmitBinary(w *BinaryWriter) error {
	if err := w.putUint8(byte(p.tag)); err != nil {
		return err
	}
	switch p.tag {
	case TagBool:
		v := byte(0)
		if p.scalar.(bool) {
			v = 1
		}
		return w.putUint8(v)
	case TagInt16:
		return w.putInt16(p.scalar.(int16))
	case TagInt32:
		return w.putInt32(p.scalar.(int32))
	case TagFloat32:
		return w.putUint32(math.Float32bits(p.scalar.(float32)))
	case TagFloat64:
		return w.putUint64(math.Float64bits(p.scalar.(float64)))
	case TagInt64:
		return w.putInt64(p.scalar.(int64))
	case TagString:
		s := p.scalar.(string)
		if err := w.putUint32(uint32(len(s))); err != nil {
			return err
		}
		return w.putBytes([]byte(s))
	case TagRaw:
		b := p.scalar.([]byte)
		if err := w.putUint32(uint32(len(b))); err != nil {
			return err
		}
		return w.putBytes(b)
	case TagInt32Array:
		return p.emitIntArrayBinary(w, int32ToBytes(p.arrInt), len(p.arrInt))
	case TagFloat64Array:
		return p.emitIntArrayBinary(w, float64ToBytes(p.arrF64), len(p.arrF64))
	case TagFloat32Array:
		return p.emitIntArrayBinary(w, float32ToBytes(p.arrF32), len(p.arrF32))
	case TagInt64Array:
		return p.emitIntArrayBinary(w, int64ToBytes(p.arrI64), len(p.arrI64))
	case TagBoolArray:
		buf := make([]byte, len(p.arrB))
		for i, v := range p.arrB {
			if v {
				buf[i] = 1
			}
		}
		return p.emitIntArrayBinary(w, buf, len(p.arrB))
	}
	return errors.Wrapf(ErrInvalidProperty, "tag %q", rune(p.tag))
}

func (p *Property) emitIntArrayBinary(w *BinaryWriter, payload []byte, count int) error {
	if err := w.putUint32(uint32(count)); err != nil {
		return err
	}
	if err := w.putUint32(arrayEncodingUncompressed); err != nil {
		return err
	}
	if err := w.putUint32(uint32(len(payload))); err != nil {
		return err
	}
	return w.putBytes(payload)
}

func int32ToBytes(v []int32) []byte {
	buf := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(x))
	}
	return buf
}

func int64ToBytes(v []int64) []byte {
	buf := make([]byte, len(v)*8)
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(x))
	}
	return buf
}

func float32ToBytes(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(x))
	}
	return buf
}

func float64ToBytes(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x))
	}
	return buf
}
