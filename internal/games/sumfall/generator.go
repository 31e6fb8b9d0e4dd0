package sumfall

// Value and target ranges.
const (
	MinValue  = 1
	MaxValue  = 9
	MinTarget = 10
	MaxTarget = 19
)

// Source is the random source behind a generator. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator produces piece values and target sums.
type Generator interface {
	// NextValue returns a piece value in [MinValue, MaxValue].
	NextValue() int
	// NextTarget returns a target sum in [MinTarget, MaxTarget].
	NextTarget() int
	// NextTargetExcept returns a target in [MinTarget, MaxTarget] other than prev.
	NextTargetExcept(prev int) int
}

// RandomGenerator draws uniformly from a Source.
type RandomGenerator struct {
	src Source
}

// NewRandomGenerator creates a generator backed by src.
func NewRandomGenerator(src Source) *RandomGenerator {
	return &RandomGenerator{src: src}
}

// NextValue returns a uniform value in [1, 9].
func (g *RandomGenerator) NextValue() int {
	return MinValue + g.src.Intn(MaxValue-MinValue+1)
}

// NextTarget returns a uniform target in [10, 19].
func (g *RandomGenerator) NextTarget() int {
	return MinTarget + g.src.Intn(MaxTarget-MinTarget+1)
}

// NextTargetExcept draws uniformly from the nine targets that differ from prev.
// If prev is outside the target range every target is eligible.
func (g *RandomGenerator) NextTargetExcept(prev int) int {
	if prev < MinTarget || prev > MaxTarget {
		return g.NextTarget()
	}
	t := MinTarget + g.src.Intn(MaxTarget-MinTarget)
	if t >= prev {
		t++
	}
	return t
}
