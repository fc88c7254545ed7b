package hash

import "github.com/cespare/xxhash/v2"

// PlaneID computes the xxHash64 of the given plane name.
func PlaneID(name string) uint64 {
	return xxhash.Sum64String(name)
}
