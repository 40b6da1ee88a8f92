package bitvector

import (
	"math/bits"
)

const bitsPerByte = 8

// BitVector is a fixed-size packed array of bits.
//
// Bits are packed least-significant-bit first: position p lives in
// byte p/8 under mask 1<<(p%8). The zero value is an empty vector.
// A BitVector is not safe for concurrent use.
type BitVector struct {
	data    []byte
	numBits uint64
	logger  *Logger
}

// New creates a BitVector holding size bits, all cleared.
// A size of 0 is valid and allocates no storage.
func New(size uint64, optFns ...Option) *BitVector {
	o := applyOptions(optFns)

	v := &BitVector{
		data:    make([]byte, byteLen(size)),
		numBits: size,
	}
	if o.logger != nil {
		v.logger = o.logger.WithLen(size)
	}
	return v
}

// byteLen returns ceil(n/8) without overflowing for n close to MaxUint64.
func byteLen(n uint64) uint64 {
	l := n / bitsPerByte
	if n%bitsPerByte != 0 {
		l++
	}
	return l
}

// check validates pos and logs the rejection if a logger is configured.
func (v *BitVector) check(op string, pos uint64) error {
	if pos < v.numBits {
		return nil
	}
	if v.logger != nil {
		v.logger.LogOutOfRange(op, pos)
	}
	return &ErrPositionOutOfRange{Pos: pos, Len: v.numBits}
}

// Set sets the bit at pos to 1.
func (v *BitVector) Set(pos uint64) error {
	if err := v.check("set", pos); err != nil {
		return err
	}
	v.data[pos/bitsPerByte] |= 1 << (pos % bitsPerByte)
	return nil
}

// Clear sets the bit at pos to 0.
func (v *BitVector) Clear(pos uint64) error {
	if err := v.check("clear", pos); err != nil {
		return err
	}
	v.data[pos/bitsPerByte] &^= 1 << (pos % bitsPerByte)
	return nil
}

// Toggle flips the bit at pos.
func (v *BitVector) Toggle(pos uint64) error {
	if err := v.check("toggle", pos); err != nil {
		return err
	}
	v.data[pos/bitsPerByte] ^= 1 << (pos % bitsPerByte)
	return nil
}

// Test reports whether the bit at pos is set.
func (v *BitVector) Test(pos uint64) (bool, error) {
	if err := v.check("test", pos); err != nil {
		return false, err
	}
	return v.bit(pos), nil
}

// bit reads pos without bounds checking.
func (v *BitVector) bit(pos uint64) bool {
	return v.data[pos/bitsPerByte]&(1<<(pos%bitsPerByte)) != 0
}

// Len returns the number of bits in the vector.
func (v *BitVector) Len() uint64 {
	return v.numBits
}

// tailMask masks the valid bits of the last storage byte.
// It is 0xFF when the length is a multiple of 8.
func (v *BitVector) tailMask() byte {
	rem := v.numBits % bitsPerByte
	if rem == 0 {
		return 0xFF
	}
	return byte(1)<<rem - 1
}

// Count returns the number of set bits in [0, Len()).
func (v *BitVector) Count() int {
	n := len(v.data)
	if n == 0 {
		return 0
	}

	count := 0
	for _, b := range v.data[:n-1] {
		count += bits.OnesCount8(b)
	}
	// Padding bits past Len() are never counted.
	count += bits.OnesCount8(v.data[n-1] & v.tailMask())
	return count
}

// Any reports whether at least one bit is set.
func (v *BitVector) Any() bool {
	_, ok := v.NextSet(0)
	return ok
}

// None reports whether no bit is set.
func (v *BitVector) None() bool {
	return !v.Any()
}

// NextSet returns the smallest set position >= pos.
// Returns false if there is none or pos is out of range.
func (v *BitVector) NextSet(pos uint64) (uint64, bool) {
	if pos >= v.numBits {
		return 0, false
	}

	byteIdx := pos / bitsPerByte
	// Mask out bits before pos in the first byte.
	b := v.data[byteIdx] &^ (byte(1)<<(pos%bitsPerByte) - 1)

	for {
		if b != 0 {
			next := byteIdx*bitsPerByte + uint64(bits.TrailingZeros8(b))
			if next < v.numBits {
				return next, true
			}
			return 0, false
		}
		byteIdx++
		if byteIdx >= uint64(len(v.data)) {
			return 0, false
		}
		b = v.data[byteIdx]
	}
}

// ClearAll clears every bit. The length is unchanged.
func (v *BitVector) ClearAll() {
	clear(v.data)
}

// Bytes returns a copy of the packed storage, ceil(Len()/8) bytes long.
//
// Position p is bit p%8 of byte p/8, least significant first.
// Padding bits past Len() are always zero.
func (v *BitVector) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	if n := len(out); n > 0 {
		out[n-1] &= v.tailMask()
	}
	return out
}

// String renders the vector as '0' and '1' characters, position 0 first.
func (v *BitVector) String() string {
	buf := make([]byte, v.numBits)
	for i := range buf {
		if v.bit(uint64(i)) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Parse builds a BitVector from the output of String.
//
// Character i sets position i when it is '1' and leaves it clear when it
// is '0'. Any other byte yields an *ErrInvalidCharacter.
func Parse(s string, optFns ...Option) (*BitVector, error) {
	o := applyOptions(optFns)

	v := New(uint64(len(s)), optFns...)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.data[i/bitsPerByte] |= 1 << (i % bitsPerByte)
		case '0':
		default:
			err := &ErrInvalidCharacter{Offset: i, Char: s[i]}
			if o.logger != nil {
				o.logger.LogParse(len(s), err)
			}
			return nil, err
		}
	}

	if o.logger != nil {
		o.logger.LogParse(len(s), nil)
	}
	return v, nil
}
