package asm

import "math"

// DataKind tags the Data variants.
type DataKind uint8

const (
	DataSigned DataKind = iota + 1
	DataUnsigned
	DataPlatform
	DataFloat
	DataByteSeq
)

// Data is a typed constant payload placed in a data section.
// Scalars occupy one machine word.
type Data struct {
	kind  DataKind
	i     int64
	u     uint64
	f     float64
	bytes []byte
}

func (Data) isExpr() {}

// Int is a signed word.
func Int(v int64) Data { return Data{kind: DataSigned, i: v} }

// UInt is an unsigned word.
func UInt(v uint64) Data { return Data{kind: DataUnsigned, u: v} }

// Word is a platform-width unsigned word.
func Word(v uint) Data { return Data{kind: DataPlatform, u: uint64(v)} }

// Float is an IEEE-754 double. NaN and infinities have no portable
// spelling and are rejected.
func Float(v float64) (Data, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Data{}, invalid("data", "float %v has no assembler literal", v)
	}
	return Data{kind: DataFloat, f: v}, nil
}

// Bytes is a raw byte sequence. b is copied.
func Bytes(b []byte) Data { return Data{kind: DataByteSeq, bytes: cloneBytes(b)} }

func (d Data) Kind() DataKind { return d.kind }

// Signed returns the value of a DataSigned payload.
func (d Data) Signed() int64 { return d.i }

// Unsigned returns the value of a DataUnsigned or DataPlatform payload.
func (d Data) Unsigned() uint64 { return d.u }

// Float64 returns the value of a DataFloat payload.
func (d Data) Float64() float64 { return d.f }

// Bytes returns a copy of a DataByteSeq payload.
func (d Data) Bytes() []byte { return cloneBytes(d.bytes) }
