package mission

// seededRand is a tiny deterministic PRNG seeded from a string. It
// reproduces the original client's 32-bit multiply-xor mixer exactly:
// the seed is a Java-style 31x string hash, and each draw remixes the
// state with two 0x45d9f3b multiply steps interleaved with xor-shifts.
// All arithmetic is on 32-bit words, wrapping on overflow.
type seededRand struct {
	state uint32
}

const mixConstant = 0x45d9f3b

func newSeededRand(seed string) *seededRand {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return &seededRand{state: h}
}

// next advances the state and returns the next 32-bit value.
func (r *seededRand) next() uint32 {
	h := r.state
	h = (h ^ (h >> 16)) * mixConstant
	h = (h ^ (h >> 13)) * mixConstant
	h = h ^ (h >> 16)
	r.state = h
	return h
}

// Float64 returns the next draw in [0, 1).
func (r *seededRand) Float64() float64 {
	return float64(r.next()) / (1 << 32)
}

// Intn returns the next draw in [0, n). The floor-of-scaled-float form
// is deliberate: it is what the original runtime computed, and changing
// it would change everyone's mission.
func (r *seededRand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}
