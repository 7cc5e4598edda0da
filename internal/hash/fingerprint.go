// Package hash provides the xxHash64 fingerprint helper used to identify
// snapshots of the listing collection.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given bytes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintString computes the xxHash64 of the given string.
func FingerprintString(data string) uint64 {
	return xxhash.Sum64String(data)
}
