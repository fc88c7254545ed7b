package encoding

import "github.com/arloliu/pixo/format"

// ValueCache is a fixed-size, direct-mapped table of recently seen working
// samples, used as an encode-side lookup and a decode-side dictionary.
//
// Each slot holds the last value whose hash mapped to it; insertion
// overwrites unconditionally. This last-write-wins collision behavior is
// part of the observable wire format: encoder and decoder perform identical
// insertion sequences and must evict identically, so the table must not be
// replaced by a chained map.
type ValueCache struct {
	slots     []uint16
	header    byte
	mask      byte
	hashShift uint
}

// NewValueCache creates a cache with 1<<params.Width slots, all initialized
// to the sentinel value, which no 15-bit working sample can equal.
func NewValueCache(params format.SchemeParams, hashShift uint) *ValueCache {
	c := &ValueCache{
		slots:     make([]uint16, 1<<params.Width),
		header:    params.Header,
		mask:      params.Mask,
		hashShift: hashShift,
	}
	c.Reset()

	return c
}

// Matches reports whether code carries the cache tag.
func (c *ValueCache) Matches(code byte) bool {
	return code&^c.mask == c.header
}

// Hash maps a working sample to its slot index.
func (c *ValueCache) Hash(value uint16) byte {
	return byte(value>>c.hashShift) & c.mask
}

// Lookup returns the value stored in the given slot.
func (c *ValueCache) Lookup(hash byte) uint16 {
	return c.slots[hash]
}

// Insert stores value in the given slot, overwriting any prior occupant.
func (c *ValueCache) Insert(hash byte, value uint16) {
	c.slots[hash] = value
}

// Code returns the tagged cache-hit code for a slot index.
func (c *ValueCache) Code(hash byte) byte {
	return c.header | hash
}

// Slot extracts the slot index from a tagged cache code.
func (c *ValueCache) Slot(code byte) byte {
	return code & c.mask
}

// Reset refills every slot with the sentinel, returning the cache to its
// initial state for a new stream.
func (c *ValueCache) Reset() {
	for i := range c.slots {
		c.slots[i] = format.CacheSentinel
	}
}

// Size returns the number of slots.
func (c *ValueCache) Size() int {
	return len(c.slots)
}
