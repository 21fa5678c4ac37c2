// Package bitset is a compact side-mask over small integer ids, used
// by internal/sortedindex to cross-check the family coherence
// invariant (spec §8): the alternative "boolean side-mask" partition
// representation the design notes mention, kept only as a debug
// oracle rather than the production partition representation.
package bitset

import "math/bits"

// New returns a BitSet able to address ids in [0, size).
func New(size int) BitSet {
	return BitSet{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitSet struct {
	bits []uint
}

func (u BitSet) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitSet) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitSet) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitSet) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// PopCount returns the number of set bits.
func (u BitSet) PopCount() int {
	c := 0
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return c
}
