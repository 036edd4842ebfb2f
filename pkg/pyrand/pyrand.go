// Package pyrand is a Mersenne Twister (MT19937) generator that reproduces
// the integer streams of CPython's random module.
//
// Orderings published by earlier versions of the benchmark tooling were
// produced with random.seed(n) followed by random.shuffle. Seeding, bit
// extraction, bounded integers and shuffling here follow the same steps, so a
// given seed yields the same permutation bit for bit:
//
//	r := pyrand.New(42)
//	r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
//
// A Rand is not safe for concurrent use.
package pyrand

import "math/bits"

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Rand is an MT19937 generator.
type Rand struct {
	mt  [n]uint32
	idx int
}

// New returns a generator seeded like random.seed(seed). Negative seeds use
// their absolute value.
func New(seed int64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state from seed.
func (r *Rand) Seed(seed int64) {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-seed)
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	r.initByArray(key)
}

func (r *Rand) initGenrand(s uint32) {
	r.mt[0] = s
	for i := 1; i < n; i++ {
		prev := r.mt[i-1]
		r.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	r.idx = n
}

func (r *Rand) initByArray(key []uint32) {
	r.initGenrand(19650218)
	i, j := 1, 0
	k := max(n, len(key))
	for ; k > 0; k-- {
		prev := r.mt[i-1]
		r.mt[i] = (r.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			r.mt[0] = r.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		prev := r.mt[i-1]
		r.mt[i] = (r.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			r.mt[0] = r.mt[n-1]
			i = 1
		}
	}
	r.mt[0] = upperMask
}

func (r *Rand) twist() {
	for k := 0; k < n; k++ {
		y := (r.mt[k] & upperMask) | (r.mt[(k+1)%n] & lowerMask)
		v := r.mt[(k+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		r.mt[k] = v
	}
	r.idx = 0
}

// Uint32 returns the next tempered 32-bit output.
func (r *Rand) Uint32() uint32 {
	if r.idx >= n {
		r.twist()
	}
	y := r.mt[r.idx]
	r.idx++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Getrandbits returns a non-negative integer with k random bits, 0 <= k <= 32.
// Like CPython, it keeps the top k bits of one 32-bit output.
func (r *Rand) Getrandbits(k int) uint32 {
	if k <= 0 {
		return 0
	}
	if k > 32 {
		panic("pyrand: Getrandbits supports at most 32 bits")
	}
	return r.Uint32() >> (32 - k)
}

// Below returns a uniform integer in [0, bound) by rejection sampling over
// bit_length(bound) bits. Below(0) returns 0.
func (r *Rand) Below(bound int) int {
	if bound <= 0 {
		return 0
	}
	k := bits.Len64(uint64(bound))
	if k > 32 {
		panic("pyrand: bound too large")
	}
	v := int(r.Getrandbits(k))
	for v >= bound {
		v = int(r.Getrandbits(k))
	}
	return v
}

// Shuffle permutes n elements in place via swap, walking from the last index
// down exactly as random.shuffle does.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Below(i+1))
	}
}
