package chip8

import (
	"math/rand"
	"time"
)

// mathRandRNG is the default RNG, seeded once at VM construction. CXKK is
// the only consumer.
type mathRandRNG struct {
	r *rand.Rand
}

func newMathRandRNG() *mathRandRNG {
	return &mathRandRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *mathRandRNG) Uint8() byte {
	return byte(m.r.Intn(256))
}

// seededRNG is a deterministic RNG for test reproducibility, per the
// design note that a deterministic seed option is useful but not
// required by the specification.
type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns a deterministic RNG suitable for tests.
func NewSeededRNG(seed int64) RNG {
	return &seededRNG{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRNG) Uint8() byte {
	return byte(s.r.Intn(256))
}
