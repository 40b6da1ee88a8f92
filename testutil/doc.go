// Package testutil provides testing utilities for vlibutils.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and generators for random bit operation
// sequences.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.RandomOps(1000, 256) // 1000 ops over positions [0, 256)
//	for _, op := range ops {
//	    switch op.Kind {
//	    case testutil.OpSet:
//	        // ...
//	    }
//	}
package testutil
