// Package hash provides the xxHash64 digest helpers the bench harness uses
// to verify round-trips by comparing lengths and digests instead of bytes.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of data.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Equal reports whether two byte sequences have identical digests and
// lengths. A digest match on equal lengths is treated as equality.
func Equal(a, b []byte) bool {
	return len(a) == len(b) && xxhash.Sum64(a) == xxhash.Sum64(b)
}
