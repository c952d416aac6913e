package generator

const (
	// MinUtilization is the smallest share a single task may receive.
	MinUtilization = 0.01
	// MaxUtilization is the largest share a single task may receive.
	MaxUtilization = 1.0
	// NumericTolerance bounds floating point error when checking that
	// period × utilisation is integral.
	NumericTolerance = 1e-10
	// ToleranceStep is how much the deviation threshold grows per failed
	// attempt.
	ToleranceStep = 0.01
	// DefaultMaxAttempts caps every search loop.
	DefaultMaxAttempts = 10000

	// hundredths per unit of utilisation
	scale = 100
	// deviationEpsilon absorbs float noise when comparing deviation and
	// threshold, both multiples of 0.01.
	deviationEpsilon = 1e-9
)

// Rand is the random source used by the generator.  *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
