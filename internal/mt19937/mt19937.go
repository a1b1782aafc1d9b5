// internal/mt19937/mt19937.go
package mt19937

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// MT is a Mersenne Twister state. The zero value is not usable; call New.
type MT struct {
	key [n]uint32
	pos int
}

// New returns a generator seeded with init_genrand(seed).
func New(seed uint32) *MT {
	mt := &MT{}
	mt.Seed(seed)
	return mt
}

// Seed resets the state with init_genrand(seed).
func (mt *MT) Seed(seed uint32) {
	for i := 0; i < n; i++ {
		mt.key[i] = seed
		seed = 1812433253*(seed^(seed>>30)) + uint32(i) + 1
	}
	mt.pos = n
}

func (mt *MT) generate() {
	var y uint32
	i := 0
	for ; i < n-m; i++ {
		y = (mt.key[i] & upperMask) | (mt.key[i+1] & lowerMask)
		mt.key[i] = mt.key[i+m] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	for ; i < n-1; i++ {
		y = (mt.key[i] & upperMask) | (mt.key[i+1] & lowerMask)
		mt.key[i] = mt.key[i+m-n] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	y = (mt.key[n-1] & upperMask) | (mt.key[0] & lowerMask)
	mt.key[n-1] = mt.key[m-1] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	mt.pos = 0
}

// Uint32 returns the next tempered 32-bit output (genrand_int32).
func (mt *MT) Uint32() uint32 {
	if mt.pos >= n {
		mt.generate()
	}
	y := mt.key[mt.pos]
	mt.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 joins two consecutive outputs, high word first. It makes *MT a
// math/rand/v2 Source.
func (mt *MT) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	return hi<<32 | uint64(mt.Uint32())
}

// Float64 returns a double in [0, 1) with 53 bits of randomness built from
// two outputs (genrand_res53).
func (mt *MT) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}
