// Package bitvector provides a fixed-size packed bit vector.
//
// # Quick Start
//
//	v := bitvector.New(10)
//	_ = v.Set(0)
//	_ = v.Set(9)
//	_ = v.Toggle(5)
//	fmt.Println(v, v.Count()) // 1000010001 3
//
// # Layout
//
// Storage is ceil(Len()/8) bytes, least significant bit first:
//
//	position:  7 6 5 4 3 2 1 0 | 15 14 ... 8
//	byte:      ------ 0 ------ | ---- 1 ----
//
// The length is fixed at construction. Padding bits in the last byte are
// never counted, rendered or returned by Bytes.
//
// # Errors
//
// Set, Clear, Toggle and Test return an *ErrPositionOutOfRange when
// pos >= Len(). It unwraps to ErrOutOfRange:
//
//	if err := v.Set(42); errors.Is(err, bitvector.ErrOutOfRange) {
//	    // handle
//	}
//
// # Concurrency
//
// A BitVector is not safe for concurrent use. Distinct vectors share no
// state.
package bitvector
