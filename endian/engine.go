// Package endian provides byte order utilities for fixed-width event records.
//
// The standard encoding/binary package stops at 16, 32 and 64 bit words.
// Time-tagged event records are 48 bits wide, so this package adds 48-bit
// accessors on top of an EndianEngine that combines binary.ByteOrder and
// binary.AppendByteOrder.
//
// # Basic Usage
//
// SSTT streams are little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	raw := endian.Uint48(engine, data[0:6])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Mask48 keeps the low 48 bits of a word.
const Mask48 = uint64(1)<<48 - 1

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine stores the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// Uint48 reads a 48-bit unsigned word from the first 6 bytes of b.
//
// Panics if len(b) < 6, like the encoding/binary accessors.
func Uint48(engine EndianEngine, b []byte) uint64 {
	_ = b[5] // bounds check hint to compiler

	if IsBigEndian(engine) {
		return uint64(engine.Uint16(b[0:2]))<<32 | uint64(engine.Uint32(b[2:6]))
	}

	return uint64(engine.Uint32(b[0:4])) | uint64(engine.Uint16(b[4:6]))<<32
}

// PutUint48 writes the low 48 bits of v into the first 6 bytes of b.
func PutUint48(engine EndianEngine, b []byte, v uint64) {
	_ = b[5] // bounds check hint to compiler

	if IsBigEndian(engine) {
		engine.PutUint16(b[0:2], uint16(v>>32))
		engine.PutUint32(b[2:6], uint32(v))
		return
	}

	engine.PutUint32(b[0:4], uint32(v))
	engine.PutUint16(b[4:6], uint16(v>>32))
}

// AppendUint48 appends the 6-byte representation of the low 48 bits of v.
func AppendUint48(engine EndianEngine, b []byte, v uint64) []byte {
	if IsBigEndian(engine) {
		b = engine.AppendUint16(b, uint16(v>>32))
		return engine.AppendUint32(b, uint32(v))
	}

	b = engine.AppendUint32(b, uint32(v))
	return engine.AppendUint16(b, uint16(v>>32))
}
